package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jwebster45206/room-engine/pkg/world"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <world.json|world.yaml>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	validator := &WorldValidator{}

	if err := validator.validateFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("World file is valid!")
}

type WorldValidator struct {
	errors []string
}

func (v *WorldValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	ext := filepath.Ext(baseName)
	switch ext {
	case ".json", ".yaml", ".yml":
	default:
		return fmt.Errorf("world file must have a .json, .yaml or .yml extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ext)
	if !isValidID(nameWithoutExt) {
		return fmt.Errorf("world filename '%s' must be lowercase snake_case (e.g. my_world.json, not my-world.json or MyWorld.json)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors = nil

	def, err := decodeStrict(data, ext)
	if err != nil {
		return fmt.Errorf("file %s failed strict unmarshaling: %w", filename, err)
	}

	v.validateDefinition(def)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	// Build is the final word: it catches anything the structural checks
	// above expressed more politely.
	if _, err := def.Build(); err != nil {
		return fmt.Errorf("world failed to build: %w", err)
	}

	return nil
}

// decodeStrict rejects unknown fields so typos in a hand-edited world file
// surface as errors instead of silently dropped doors.
func decodeStrict(data []byte, ext string) (*world.Definition, error) {
	var def world.Definition
	if ext == ".json" {
		if !json.Valid(data) {
			return nil, fmt.Errorf("invalid JSON")
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&def); err != nil {
			return nil, err
		}
		return &def, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, err
	}
	return &def, nil
}

func (v *WorldValidator) validateDefinition(def *world.Definition) {
	if def.Name == "" {
		v.addError("world is missing a name")
	}

	for roomID := range def.Rooms {
		if !isValidID(roomID) {
			v.addError(fmt.Sprintf("room ID '%s' should be lowercase snake_case", roomID))
		}
	}

	v.validateRoomRef("start_room", def.StartRoom, def)
	v.validateRoomRef("exit_room", def.ExitRoom, def)

	seen := make(map[string]bool)
	for i, d := range def.Doors {
		ctx := fmt.Sprintf("door %d (%s %s)", i, d.From, d.Direction)

		if d.Direction == "" {
			v.addError(ctx + " has no direction")
		}
		v.validateRoomRef(ctx+" from", d.From, def)
		v.validateRoomRef(ctx+" to", d.To, def)

		if d.KeyRoom != "" {
			if !d.Locked {
				v.addError(ctx + " sets key_room but is not locked")
			}
			v.validateRoomRef(ctx+" key_room", d.KeyRoom, def)
		}

		pair := d.From + "\x00" + strings.ToUpper(strings.TrimSpace(d.Direction))
		if seen[pair] {
			v.addError(fmt.Sprintf("duplicate door from '%s' heading %s", d.From, d.Direction))
		}
		seen[pair] = true
	}

	v.validateReachability(def)
}

func (v *WorldValidator) validateRoomRef(fieldName, roomID string, def *world.Definition) {
	if roomID == "" {
		v.addError(fieldName + " is not set")
		return
	}
	if _, ok := def.Rooms[roomID]; !ok {
		v.addError(fmt.Sprintf("%s references unknown room '%s'", fieldName, roomID))
	}
}

// validateReachability walks the door graph from the start room, ignoring
// locks. Every room should be visitable, the exit especially; an island
// room is almost always an authoring mistake.
func (v *WorldValidator) validateReachability(def *world.Definition) {
	if _, ok := def.Rooms[def.StartRoom]; !ok {
		return
	}

	adjacent := make(map[string][]string)
	for _, d := range def.Doors {
		adjacent[d.From] = append(adjacent[d.From], d.To)
	}

	visited := map[string]bool{def.StartRoom: true}
	queue := []string{def.StartRoom}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adjacent[cur] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	for roomID := range def.Rooms {
		if !visited[roomID] {
			v.addError(fmt.Sprintf("room '%s' is unreachable from start_room '%s'", roomID, def.StartRoom))
		}
	}
}

func (v *WorldValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var validIDRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidID(id string) bool {
	return validIDRegex.MatchString(id)
}
