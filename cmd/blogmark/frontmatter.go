package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-blogmark"
	"github.com/alnah/go-blogmark/internal/yamlutil"
)

// ErrFrontMatter indicates an unterminated or unparsable front matter block.
var ErrFrontMatter = errors.New("invalid front matter")

// frontMatterDelimiter opens and closes a YAML front matter block.
const frontMatterDelimiter = "---"

// splitFrontMatter separates a leading YAML block from the markdown body.
// The block describes the post the file renders as:
//
//	---
//	title: Hello
//	slug: hello
//	lang: fr
//	---
//
// Returns a nil post when content has no front matter.
func splitFrontMatter(content string) (*blogmark.Post, string, error) {
	content = strings.TrimPrefix(content, "\ufeff")
	first, rest, found := strings.Cut(content, "\n")
	if !found || strings.TrimRight(first, "\r ") != frontMatterDelimiter {
		return nil, content, nil
	}

	var block strings.Builder
	for {
		line, tail, more := strings.Cut(rest, "\n")
		if strings.TrimRight(line, "\r ") == frontMatterDelimiter {
			post := &blogmark.Post{}
			if strings.TrimSpace(block.String()) == "" {
				return post, tail, nil
			}
			if err := yamlutil.Unmarshal([]byte(block.String()), post); err != nil {
				return nil, "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
			}
			return post, tail, nil
		}
		if !more {
			return nil, "", fmt.Errorf("%w: missing closing %q", ErrFrontMatter, frontMatterDelimiter)
		}
		block.WriteString(strings.TrimSuffix(line, "\r"))
		block.WriteByte('\n')
		rest = tail
	}
}
