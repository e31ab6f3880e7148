// Package clipboard provides access to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported reports a platform without a usable clipboard utility.
var ErrUnsupported = errors.New("clipboard unsupported on this system")

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct {
	writeAll    func(string) error
	unsupported bool
}

// NewService constructs a clipboard service backed by the system clipboard.
func NewService() *Service {
	return &Service{writeAll: clipboard.WriteAll, unsupported: clipboard.Unsupported}
}

// Copy replaces the clipboard contents with text.
func (service *Service) Copy(text string) error {
	if service.unsupported {
		return ErrUnsupported
	}
	if writeError := service.writeAll(text); writeError != nil {
		return fmt.Errorf("write clipboard: %w", writeError)
	}
	return nil
}

var _ Copier = (*Service)(nil)
