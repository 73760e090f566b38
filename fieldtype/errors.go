package fieldtype

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	settingsInvalidCode  = "RICHTEXT_SETTINGS_INVALID"
	valueInvalidCode     = "RICHTEXT_VALUE_INVALID"
	capabilityFailedCode = "RICHTEXT_CAPABILITY_FAILED"
	markdownFailedCode   = "RICHTEXT_MARKDOWN_FAILED"
)

func wrapSettingsError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "rich text field settings invalid").
		WithTextCode(settingsInvalidCode)
}

func wrapValueError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "rich text value invalid").
		WithTextCode(valueInvalidCode)
}

func wrapCapabilityError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, msg).
		WithTextCode(capabilityFailedCode)
}

func wrapMarkdownError(err error) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "markdown import failed").
		WithTextCode(markdownFailedCode)
}
