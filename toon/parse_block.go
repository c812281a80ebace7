package toon

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ============================================================
// Table Block Parser
// ============================================================
//
// Document text is scanned line by line with three states:
//
//   seekBlockStart  skip blank lines, expect a header line
//   readHeader      parse name(rel)[count]{keys}:
//   readRows        collect row lines until a blank line that is
//                   followed by another header, or end of input
//
// Blank lines inside a block that are not followed by a header are
// ignored rather than ending the block.

type parseState int

const (
	stateSeekBlockStart parseState = iota
	stateReadHeader
	stateReadRows
)

func (s parseState) String() string {
	switch s {
	case stateSeekBlockStart:
		return "SeekBlockStart"
	case stateReadHeader:
		return "ReadHeader"
	case stateReadRows:
		return "ReadRows"
	default:
		return "unknown"
	}
}

// BlockReader reads the blocks of a document one at a time.
type BlockReader struct {
	lines  []string
	pos    int // index of the next unread line
	blocks int
}

// NewBlockReader creates a reader over document text.
func NewBlockReader(input string) *BlockReader {
	lines := strings.Split(input, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return &BlockReader{lines: lines}
}

// BlockNum returns the number of blocks read so far.
func (br *BlockReader) BlockNum() int {
	return br.blocks
}

// Next reads the next block. Returns io.EOF when no blocks remain.
func (br *BlockReader) Next() (*Block, error) {
	state := stateSeekBlockStart
	var (
		b    *Block
		body []string
	)

	for {
		switch state {
		case stateSeekBlockStart:
			if br.pos >= len(br.lines) {
				return nil, io.EOF
			}
			line := br.lines[br.pos]
			if isBlank(line) {
				br.pos++
				continue
			}
			if !looksLikeHeader(line) {
				return nil, ErrMalformedDocument.New(
					fmt.Sprintf("line %d: expected block header, got %q", br.pos+1, clip(line)))
			}
			state = stateReadHeader

		case stateReadHeader:
			lineNo := br.pos + 1
			hdr, rest, err := parseHeader(br.lines[br.pos], lineNo)
			if err != nil {
				return nil, err
			}
			br.pos++
			b = hdr
			if rest != "" {
				body = append(body, rest)
			}
			state = stateReadRows

		case stateReadRows:
			if br.pos >= len(br.lines) {
				return br.finish(b, body), nil
			}
			line := br.lines[br.pos]
			if !isBlank(line) {
				body = append(body, line)
				br.pos++
				continue
			}

			// Blank line: a block boundary only if a header follows.
			next := br.pos
			for next < len(br.lines) && isBlank(br.lines[next]) {
				next++
			}
			br.pos = next
			if next >= len(br.lines) || looksLikeHeader(br.lines[next]) {
				return br.finish(b, body), nil
			}
		}
	}
}

func (br *BlockReader) finish(b *Block, body []string) *Block {
	b.Rows = DecodeRows(strings.Join(body, "\n"))
	br.blocks++
	return b
}

// ReadAll reads all remaining blocks.
func (br *BlockReader) ReadAll() ([]*Block, error) {
	var blocks []*Block
	for {
		b, err := br.Next()
		if err == io.EOF {
			return blocks, nil
		}
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
}

// ParseBlocks parses every block of a document.
func ParseBlocks(input string) ([]*Block, error) {
	return NewBlockReader(input).ReadAll()
}

// ============================================================
// Header
// ============================================================

// looksLikeHeader reports whether line starts with a name followed by
// '[' or '('.
func looksLikeHeader(line string) bool {
	s := strings.TrimSpace(line)
	i := 0
	for i < len(s) && isNameByte(s[i]) {
		i++
	}
	return i > 0 && i < len(s) && (s[i] == '[' || s[i] == '(')
}

// parseHeader parses: name(rel)[count]{k1,k2}:
// Any text after the colon is returned as the first row line.
func parseHeader(line string, lineNo int) (*Block, string, error) {
	s := strings.TrimSpace(line)
	bad := func(msg string) (*Block, string, error) {
		return nil, "", ErrMalformedHeader.New(lineNo, msg)
	}

	i := 0
	for i < len(s) && isNameByte(s[i]) {
		i++
	}
	if i == 0 {
		return bad("missing block name")
	}
	b := &Block{Name: s[:i], Line: lineNo}

	// Optional relation
	if i < len(s) && s[i] == '(' {
		end := strings.IndexByte(s[i:], ')')
		if end == -1 {
			return bad("unterminated relation")
		}
		b.RawRelation = s[i : i+end+1]
		b.Relation = ParseRelation(b.RawRelation)
		i += end + 1
	}

	// [count]
	if i >= len(s) || s[i] != '[' {
		return bad("missing '[' after block name")
	}
	end := strings.IndexByte(s[i:], ']')
	if end == -1 {
		return bad("unterminated count")
	}
	countText := s[i+1 : i+end]
	if countText == "" || strings.TrimLeft(countText, "0123456789") != "" {
		return bad(fmt.Sprintf("invalid count %q", countText))
	}
	count, err := strconv.Atoi(countText)
	if err != nil {
		return bad(fmt.Sprintf("invalid count %q", countText))
	}
	b.Count = count
	i += end + 1

	// {keys}
	if i >= len(s) || s[i] != '{' {
		return bad("missing '{' key list")
	}
	end = strings.IndexByte(s[i:], '}')
	if end == -1 {
		return bad("unterminated key list")
	}
	b.Keys = parseKeys(s[i+1 : i+end])
	i += end + 1

	if i >= len(s) || s[i] != ':' {
		return bad("missing ':' after key list")
	}
	return b, strings.TrimSpace(s[i+1:]), nil
}

func parseKeys(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	keys := strings.Split(text, string(Delimiter))
	for i := range keys {
		keys[i] = strings.TrimSpace(keys[i])
	}
	return keys
}

// ParseRelation parses "(key:parentId)". The key runs to the first
// colon. Returns nil if either side is empty or the colon is missing.
func ParseRelation(text string) *Relation {
	inner := strings.TrimSpace(text)
	inner = strings.TrimPrefix(inner, "(")
	inner = strings.TrimSuffix(inner, ")")
	idx := strings.IndexByte(inner, ':')
	if idx == -1 {
		return nil
	}
	key := strings.TrimSpace(inner[:idx])
	parent := strings.TrimSpace(inner[idx+1:])
	if key == "" || parent == "" {
		return nil
	}
	return &Relation{Key: key, ParentID: parent}
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// clip shortens a line for error messages.
func clip(s string) string {
	const max = 40
	s = strings.TrimSpace(s)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
