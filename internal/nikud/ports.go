package nikud

import "context"

type Annotator interface {
	// AddNikud returns the Hebrew text with vowel marks added.
	AddNikud(ctx context.Context, text string) (string, error)
}
