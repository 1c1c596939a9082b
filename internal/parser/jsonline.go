package parser

import (
	"bufio"
	"fmt"
	"time"

	"github.com/valyala/fastjson"
	"golang.org/x/text/unicode/norm"

	"github.com/tailwater/sawmill/internal/model"
)

// ParseJSONLine parses one JSON-formatted access-log line of the shape
//
//	{"ip":"127.0.0.1","time":"2023-10-10T13:55:36Z","method":"GET","path":"/","status":200,"size":1234}
//
// Semantics match ParseLine: malformed or invalid lines yield ok=false.
func ParseJSONLine(p *fastjson.Parser, line string) (model.Entry, bool) {
	v, err := p.Parse(line)
	if err != nil {
		return model.Entry{}, false
	}

	ts, err := time.Parse(time.RFC3339, string(v.GetStringBytes("time")))
	if err != nil {
		return model.Entry{}, false
	}

	entry, err := model.NewEntry(
		string(v.GetStringBytes("ip")),
		ts,
		string(v.GetStringBytes("method")),
		norm.NFC.String(string(v.GetStringBytes("path"))),
		v.GetInt("status"),
		v.GetInt64("size"),
	)
	if err != nil {
		return model.Entry{}, false
	}
	return entry, true
}

// ParseJSON reads the whole file as JSON lines and returns every valid entry.
func (p *Parser) ParseJSON() ([]model.Entry, error) {
	rc, err := openSource(p.path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var fj fastjson.Parser
	var entries []model.Entry
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if entry, ok := ParseJSONLine(&fj, sc.Text()); ok {
			entries = append(entries, entry)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parser: scan: %w", err)
	}
	return entries, nil
}
