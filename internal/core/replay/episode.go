// Package replay plays recorded episodes through a reward the way the
// training loop would, so rewards can be inspected offline.
package replay

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeusync/rewardshaping/internal/core/game"
)

const maxLineSize = 16 << 20

// Step is one recorded tick: the state and the action each car applied in it.
type Step struct {
	State   game.State          `json:"state"`
	Actions map[int]game.Action `json:"actions,omitempty"`
}

type Episode struct {
	Name  string
	Steps []Step
}

// LoadJSONL reads one JSON encoded Step per line. Blank lines are skipped.
func LoadJSONL(name string, r io.Reader) (*Episode, error) {
	ep := &Episode{Name: name}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineSize)

	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		var s Step
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %v", ErrMalformed, name, line, err)
		}
		ep.Steps = append(ep.Steps, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s:%d: %v", ErrMalformed, name, line+1, err)
	}
	return ep, nil
}

// LoadFile loads an episode named after the file.
func LoadFile(path string) (*Episode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return LoadJSONL(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), f)
}
