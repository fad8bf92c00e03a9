package parser

import (
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	ts "github.com/tree-sitter/go-tree-sitter"
)

// parserPool hands out tree-sitter parsers sharing one grammar. Idle parsers
// park in a buffered channel; new ones are created lazily until maxSize, after
// which acquire blocks until a checkout comes back.
type parserPool struct {
	idle    chan *ts.Parser
	grammar unsafe.Pointer
	lang    Language
	isTSX   bool
	maxSize int
	logger  *slog.Logger

	mu   sync.Mutex
	live int
}

func newParserPool(lang Language, grammar unsafe.Pointer, isTSX bool, maxSize int, logger *slog.Logger) *parserPool {
	return &parserPool{
		idle:    make(chan *ts.Parser, maxSize),
		grammar: grammar,
		lang:    lang,
		isTSX:   isTSX,
		maxSize: maxSize,
		logger:  logger,
	}
}

func (p *parserPool) acquire() (*ts.Parser, error) {
	select {
	case parser := <-p.idle:
		return parser, nil
	default:
	}

	p.mu.Lock()
	if p.live >= p.maxSize {
		p.mu.Unlock()
		return <-p.idle, nil
	}
	p.live++
	p.mu.Unlock()

	parser, err := p.newParser()
	if err != nil {
		p.mu.Lock()
		p.live--
		p.mu.Unlock()
		return nil, err
	}
	return parser, nil
}

func (p *parserPool) newParser() (*ts.Parser, error) {
	parser := ts.NewParser()
	if parser == nil {
		return nil, fmt.Errorf("create %s parser", p.lang)
	}
	if err := parser.SetLanguage(ts.NewLanguage(p.grammar)); err != nil {
		parser.Close()
		return nil, fmt.Errorf("set %s grammar: %w", p.lang, err)
	}
	return parser, nil
}

func (p *parserPool) release(parser *ts.Parser) {
	if parser == nil {
		return
	}
	select {
	case p.idle <- parser:
	default:
		// More releases than acquires means a caller bug; don't leak.
		parser.Close()
		p.logger.Warn("parser pool overflow, closing parser", "language", p.lang.String())
	}
}

// close drains the idle channel and closes every parked parser. No parser
// may be checked out when this runs.
func (p *parserPool) close() {
	close(p.idle)
	for parser := range p.idle {
		if parser != nil {
			parser.Close()
		}
	}
}
