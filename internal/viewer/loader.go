package viewer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"glb-viewer/internal/gltfasset"
)

// ModelExt is the only file extension the viewer opens.
const ModelExt = ".glb"

var (
	// ErrUnsupportedFile is returned for files without the .glb extension.
	ErrUnsupportedFile = errors.New("viewer: unsupported file type")
	// ErrTooLarge is returned for files over the loader's size cap.
	ErrTooLarge = errors.New("viewer: file too large")
	// ErrNoFetcher is returned for URL loads on a loader built without a Fetcher.
	ErrNoFetcher = errors.New("viewer: URL loading not configured")
)

const resultBuffer = 8

// SourceKind says where model bytes came from.
type SourceKind int

const (
	SourceFile SourceKind = iota
	SourceURL
	SourceBytes
)

// Source identifies one load request: a file path, a URL, or a name for raw bytes.
type Source struct {
	Kind SourceKind
	Ref  string
}

func (s Source) String() string {
	switch s.Kind {
	case SourceFile:
		return "file:" + s.Ref
	case SourceURL:
		return s.Ref
	}
	return "bytes:" + s.Ref
}

// LoadResult is the continuation of one asynchronous load: either a decoded
// asset or the error that stopped it.
type LoadResult struct {
	Source Source
	Asset  *gltfasset.Asset
	Err    error
}

// Fetcher fetches a URL into memory.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Loader reads and decodes models off the render thread. Each load runs in its
// own goroutine and posts a LoadResult; the render thread collects results with
// Poll, so scene mutation never leaves that thread.
type Loader struct {
	fetch    Fetcher
	maxBytes int64
	results  chan LoadResult
	wg       sync.WaitGroup
}

// NewLoader returns a loader. fetch may be nil when URL loading is not needed;
// maxBytes <= 0 disables the file size cap.
func NewLoader(fetch Fetcher, maxBytes int64) *Loader {
	return &Loader{
		fetch:    fetch,
		maxBytes: maxBytes,
		results:  make(chan LoadResult, resultBuffer),
	}
}

// LoadFile reads and decodes a .glb file.
func (l *Loader) LoadFile(ctx context.Context, path string) {
	src := Source{Kind: SourceFile, Ref: path}
	l.spawn(ctx, src, func() (*gltfasset.Asset, error) {
		buf, err := l.readFile(path)
		if err != nil {
			return nil, err
		}
		return gltfasset.Decode(filepath.Base(path), buf)
	})
}

// LoadURL fetches and decodes the asset at url.
func (l *Loader) LoadURL(ctx context.Context, url string) {
	src := Source{Kind: SourceURL, Ref: url}
	l.spawn(ctx, src, func() (*gltfasset.Asset, error) {
		if l.fetch == nil {
			return nil, ErrNoFetcher
		}
		buf, err := l.fetch.Fetch(ctx, url)
		if err != nil {
			return nil, err
		}
		return gltfasset.Decode(urlBase(url), buf)
	})
}

// LoadBytes decodes an in-memory buffer.
func (l *Loader) LoadBytes(ctx context.Context, name string, buf []byte) {
	src := Source{Kind: SourceBytes, Ref: name}
	l.spawn(ctx, src, func() (*gltfasset.Asset, error) {
		return gltfasset.Decode(name, buf)
	})
}

// Poll returns a finished load without blocking.
func (l *Loader) Poll() (LoadResult, bool) {
	select {
	case res := <-l.results:
		return res, true
	default:
		return LoadResult{}, false
	}
}

// Results exposes the completion channel for callers that want to block.
func (l *Loader) Results() <-chan LoadResult {
	return l.results
}

// Wait blocks until every started load has posted its result or given up
// because its context ended. Results must be drained concurrently if more than
// the channel buffer are in flight.
func (l *Loader) Wait() {
	l.wg.Wait()
}

func (l *Loader) spawn(ctx context.Context, src Source, load func() (*gltfasset.Asset, error)) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		asset, err := load()
		if err != nil {
			err = fmt.Errorf("load %s: %w", src, err)
		}
		select {
		case l.results <- LoadResult{Source: src, Asset: asset, Err: err}:
		case <-ctx.Done():
		}
	}()
}

func (l *Loader) readFile(path string) ([]byte, error) {
	if !strings.EqualFold(filepath.Ext(path), ModelExt) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, filepath.Base(path))
	}
	if l.maxBytes > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.Size() > l.maxBytes {
			return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, info.Size())
		}
	}
	return os.ReadFile(path)
}

// urlBase returns the last path segment of url, without query or fragment.
func urlBase(url string) string {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	if i := strings.LastIndex(url, "/"); i >= 0 && i < len(url)-1 {
		return url[i+1:]
	}
	return url
}
