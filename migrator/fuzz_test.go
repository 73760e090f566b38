package migrator

import (
	"strings"
	"testing"
)

func FuzzMigrate(f *testing.F) {
	seeds := []string{
		"",
		"<p>plain</p>",
		`<figure><img src="x.png"></figure>`,
		`<figure class="foo"><iframe src="//example.com/embed"></iframe></figure>`,
		`<figure><img src="x.png">`,
		`<figure class='image'><figure><iframe src=x></iframe></figure></figure>`,
		`<figure class="media"><div data-oembed-url="https://e/v"><iframe src="https://e/v"></iframe></div></figure>`,
		`<figure class=<img src=>`,
		`<figure class="media"><iframe src="//a"></iframe><iframe src="//b"></iframe></figure>`,
		`<figure class="media"><div data-oembed-url="https://x"></div><iframe src="//b"></iframe></figure>`,
		`<figure class=a"b><img src="x.png"></figure>`,
	}
	for _, seed := range seeds {
		f.Add(seed, false)
		f.Add(seed, true)
	}

	f.Fuzz(func(t *testing.T, input string, preview bool) {
		once := Migrate(input, preview)
		if twice := Migrate(once, preview); twice != once {
			t.Fatalf("migration not idempotent: %q -> %q -> %q", input, once, twice)
		}
		if !strings.Contains(input, "<") && once != input {
			t.Fatalf("text without markup changed: %q -> %q", input, once)
		}
		if len(once) < len(input) && preview {
			t.Fatalf("preview migration removed bytes: %q -> %q", input, once)
		}
	})
}
