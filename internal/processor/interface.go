package processor

import "context"

// Processor turns one recording into its chapter artifacts.
type Processor interface {
	Process(ctx context.Context, inputPath string) error
	// Archive moves a processed input out of the watched folder.
	Archive(ctx context.Context, inputPath string) error
}
