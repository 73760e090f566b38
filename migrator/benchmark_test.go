package migrator

import (
	"strings"
	"testing"
)

func BenchmarkMigrate(b *testing.B) {
	m, err := New(Config{})
	if err != nil {
		b.Fatalf("failed to create migrator: %v", err)
	}

	block := `<p>Intro with <strong>bold</strong> text.</p>
<figure class="left"><img src="/uploads/a.jpg" alt="A"><figcaption>A</figcaption></figure>
<figure><iframe width="560" height="315" src="//www.youtube.com/embed/abc" allowfullscreen></iframe></figure>
`
	input := strings.Repeat(block, 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Migrate(input)
	}
}
