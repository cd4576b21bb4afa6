package views

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"github.com/dmitrijs2005/recipebook/internal/client/services"
)

// imagePicker decodes selected files in the background. When selections
// overlap, the last one wins and earlier results are dropped.
type imagePicker struct {
	encode func(path string) (string, error)

	mu    sync.Mutex
	gen   uint64
	image *string
	err   error
	done  chan struct{}
}

func newImagePicker() *imagePicker {
	return &imagePicker{encode: services.EncodeImageFile}
}

func (p *imagePicker) selectImage(path string) {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	done := make(chan struct{})
	p.done = done
	encode := p.encode
	p.mu.Unlock()

	go func() {
		defer close(done)
		uri, err := encode(path)

		p.mu.Lock()
		defer p.mu.Unlock()
		if gen != p.gen {
			return
		}
		if err != nil {
			p.err = err
			return
		}
		p.image, p.err = models.StringPtr(uri), nil
	}()
}

// await blocks until the latest selection is decoded and returns its error.
func (p *imagePicker) await(ctx context.Context) error {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()

	if done == nil {
		return nil
	}
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *imagePicker) current() *string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.image
}

func (p *imagePicker) set(image *string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	p.image, p.err, p.done = image, nil, nil
}
