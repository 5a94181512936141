// Package parser reads the ENTITIES section of an ASCII DXF document
// into typed drawing entities. Only the entity kinds the exporter
// understands are materialized; everything else is skipped.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"dxf-export/internal/exporter/models"
)

// ============================================================
// Tag reader
// ============================================================

// tag is one DXF group code / value pair.
type tag struct {
	code  int
	value string
}

// Document is a parsed drawing: the modelspace entity stream in source
// order. Entities are immutable once parsed.
type Document struct {
	Entities []models.Entity
}

// ReadFile parses the DXF document at path. A missing or unreadable
// file is fatal; nothing is processed.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open DXF: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a DXF document from r.
func Read(r io.Reader) (*Document, error) {
	tags, err := readTags(r)
	if err != nil {
		return nil, fmt.Errorf("read DXF tags: %w", err)
	}
	return &Document{Entities: buildEntities(entitySection(tags))}, nil
}

func readTags(r io.Reader) ([]tag, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var tags []tag
	for scanner.Scan() {
		codeLine := strings.TrimSpace(scanner.Text())
		if !scanner.Scan() {
			break
		}
		value := strings.TrimRight(scanner.Text(), "\r\n")

		code, err := strconv.Atoi(codeLine)
		if err != nil {
			// Desynced tag stream; skip the pair rather than abort.
			continue
		}
		tags = append(tags, tag{code: code, value: strings.TrimSpace(value)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}

// entitySection cuts the tag stream down to the ENTITIES section.
func entitySection(tags []tag) []tag {
	for i := 0; i < len(tags)-1; i++ {
		if tags[i].code == 0 && tags[i].value == "SECTION" &&
			tags[i+1].code == 2 && tags[i+1].value == "ENTITIES" {
			for j := i + 2; j < len(tags); j++ {
				if tags[j].code == 0 && tags[j].value == "ENDSEC" {
					return tags[i+2 : j]
				}
			}
			return tags[i+2:]
		}
	}
	// No explicit sections: treat the whole stream as entities. Keeps
	// hand-written fixtures and trimmed files working.
	return tags
}

// rawEntity is one entity's name plus its tags; POLYLINE additionally
// carries the tag groups of its VERTEX sub-entities.
type rawEntity struct {
	name     string
	tags     []tag
	vertices [][]tag
}

func splitEntities(tags []tag) []rawEntity {
	var out []rawEntity
	i := 0
	for i < len(tags) {
		if tags[i].code != 0 {
			i++
			continue
		}
		name := tags[i].value
		j := i + 1
		for j < len(tags) && tags[j].code != 0 {
			j++
		}
		ent := rawEntity{name: name, tags: tags[i+1 : j]}
		i = j

		if name == "POLYLINE" {
			// VERTEX sub-entities up to SEQEND belong to the polyline.
			for i < len(tags) && tags[i].code == 0 && tags[i].value == "VERTEX" {
				k := i + 1
				for k < len(tags) && tags[k].code != 0 {
					k++
				}
				ent.vertices = append(ent.vertices, tags[i+1:k])
				i = k
			}
			if i < len(tags) && tags[i].code == 0 && tags[i].value == "SEQEND" {
				k := i + 1
				for k < len(tags) && tags[k].code != 0 {
					k++
				}
				i = k
			}
		}
		out = append(out, ent)
	}
	return out
}

func buildEntities(tags []tag) []models.Entity {
	var entities []models.Entity
	for _, raw := range splitEntities(tags) {
		if e := buildEntity(raw); e != nil {
			entities = append(entities, e)
		}
	}
	return entities
}

// parseFloat and parseInt fall back to zero on malformed values; a bad
// numeric field degrades the one entity, never the run.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}
