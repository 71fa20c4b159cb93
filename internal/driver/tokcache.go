package driver

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"cxlint/internal/source"
	"cxlint/internal/token"
)

// Bump when the payload format changes; stale entries are ignored.
const cacheSchemaVersion uint16 = 1

// TokenCache stores lexed token streams on disk, keyed by the sha256
// of the file content. Lint runs revisit mostly unchanged trees, so a
// hit skips the lexer entirely. Safe for concurrent use. A nil
// *TokenCache is a valid no-op cache.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

// cachePayload is the serialized form of a token stream. Token text
// and leading trivia are not stored: both are re-sliced from the file
// content on load, which also makes a corrupt entry self-evident.
type cachePayload struct {
	Schema uint16
	Hash   []byte
	Kinds  []uint8
	Starts []uint32
	Ends   []uint32
	Lines  []uint32
}

// OpenTokenCache initializes a cache at the standard user location.
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenTokenCacheAt(filepath.Join(base, app))
}

// OpenTokenCacheAt initializes a cache rooted at dir.
func OpenTokenCacheAt(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(filepath.Join(dir, "tok"), 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) pathFor(hash [32]byte) string {
	return filepath.Join(c.dir, "tok", hex.EncodeToString(hash[:])+".mp")
}

// Put serializes the token stream for file.
func (c *TokenCache) Put(file *source.File, tokens []token.Token) error {
	if c == nil {
		return nil
	}
	payload := cachePayload{
		Schema: cacheSchemaVersion,
		Hash:   file.Hash[:],
		Kinds:  make([]uint8, len(tokens)),
		Starts: make([]uint32, len(tokens)),
		Ends:   make([]uint32, len(tokens)),
		Lines:  make([]uint32, len(tokens)),
	}
	for i, tok := range tokens {
		payload.Kinds[i] = uint8(tok.Kind)
		payload.Starts[i] = tok.Span.Start
		payload.Ends[i] = tok.Span.End
		payload.Lines[i] = tok.Line
	}

	raw, err := msgpack.Marshal(&payload)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(file.Hash)
	tmp, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p)
}

// Get rebuilds the cached token stream for file, if a valid entry for
// its exact content exists.
func (c *TokenCache) Get(file *source.File) ([]token.Token, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	raw, err := os.ReadFile(c.pathFor(file.Hash))
	c.mu.RUnlock()
	if err != nil {
		// missing or unreadable entry; treat as a miss
		return nil, false
	}

	var payload cachePayload
	if err := msgpack.Unmarshal(raw, &payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false
	}
	if !bytes.Equal(payload.Hash, file.Hash[:]) {
		return nil, false
	}
	n := len(payload.Kinds)
	if len(payload.Starts) != n || len(payload.Ends) != n || len(payload.Lines) != n || n == 0 {
		return nil, false
	}

	contentLen := uint32(len(file.Content))
	tokens := make([]token.Token, 0, n)
	var prevEnd uint32
	for i := 0; i < n; i++ {
		start, end := payload.Starts[i], payload.Ends[i]
		if start < prevEnd || end < start || end > contentLen {
			return nil, false
		}
		tokens = append(tokens, token.Token{
			Kind: token.Kind(payload.Kinds[i]),
			Text: string(file.Content[start:end]),
			Span: source.Span{File: file.ID, Start: start, End: end},
			File: file.Path,
			Line: payload.Lines[i],
			Leading: token.Trivia{
				Span: source.Span{File: file.ID, Start: prevEnd, End: start},
				Text: string(file.Content[prevEnd:start]),
			},
		})
		prevEnd = end
	}
	// a valid stream always ends with the EOF sentinel
	if tokens[n-1].Kind != token.EOF || prevEnd != contentLen {
		return nil, false
	}
	return tokens, true
}
