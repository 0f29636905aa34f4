// Package request reads reaction request lists.
//
// One request per line:
//
//	type mat mt [mat1 mt1]
//
// Blank lines and lines starting with '#' are skipped. A request with
// type 0 and mat 0 ends the list; anything after it is ignored.
package request

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sskutnik/deBOXER/boxer"
)

// ErrMalformedRequest indicates a request line that cannot be parsed.
var ErrMalformedRequest = errors.New("request: malformed request line")

// Request is one parsed request line.
type Request struct {
	Key    boxer.ReactionKey
	Line   string // source text, echoed into the output dataset
	LineNo int
}

// Listing reports whether r asks for a header listing instead of a matrix.
func (r Request) Listing() bool { return r.Key.Type == boxer.TypeListing }

// Group is the requests of one material in request order.
type Group struct {
	Mat      int
	Requests []Request
}

// Parse reads requests from r up to the terminator or EOF.
func Parse(r io.Reader) ([]Request, error) {
	var (
		out []Request
		sc  = bufio.NewScanner(r)
		n   int
	)
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), " \t\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, err := parseKey(strings.Fields(trimmed))
		if err != nil {
			return nil, fmt.Errorf("line %d %q: %w", n, trimmed, err)
		}
		if key.Type == boxer.TypeGroupBounds && key.Mat == 0 {
			return out, nil
		}
		if err = key.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		out = append(out, Request{Key: key, Line: line, LineNo: n})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read requests: %w", err)
	}

	return out, nil
}

// parseKey reads "type mat mt" and, when both are present and numeric,
// "mat1 mt1". Further fields are ignored.
func parseKey(fields []string) (boxer.ReactionKey, error) {
	if len(fields) < 2 {
		return boxer.ReactionKey{}, ErrMalformedRequest
	}
	var head [3]int
	for i := range head {
		if i >= len(fields) {
			// "0 0" terminator is the only legal two-field line.
			if head[0] == boxer.TypeGroupBounds && head[1] == 0 {
				break
			}
			return boxer.ReactionKey{}, ErrMalformedRequest
		}
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return boxer.ReactionKey{}, fmt.Errorf("field %d: %w", i+1, ErrMalformedRequest)
		}
		head[i] = v
	}
	key := boxer.ReactionKey{Type: head[0], Mat: head[1], MT: head[2]}
	if len(fields) >= 5 {
		mat1, err1 := strconv.Atoi(fields[3])
		mt1, err2 := strconv.Atoi(fields[4])
		if err1 == nil && err2 == nil {
			key.Mat1, key.MT1 = mat1, mt1
		}
	}

	return key, nil
}

// ByMaterial groups reqs by material, ordering groups by first appearance.
func ByMaterial(reqs []Request) []Group {
	var (
		groups []Group
		index  = make(map[int]int)
	)
	for _, r := range reqs {
		i, ok := index[r.Key.Mat]
		if !ok {
			i = len(groups)
			index[r.Key.Mat] = i
			groups = append(groups, Group{Mat: r.Key.Mat})
		}
		groups[i].Requests = append(groups[i].Requests, r)
	}

	return groups
}
