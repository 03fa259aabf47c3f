package sequence

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/lixenwraith/kinloom/notation"
)

// docShape is the tagged union of supported document layouts
type docShape int

const (
	shapeUnknown docShape = iota
	shapeFlat
	shapeNested
)

// rawAttributes mirrors one hand's JSON fields before normalization.
// Turns stays raw because documents encode it as a number or as a
// freeform sentinel string
type rawAttributes struct {
	MotionType string          `json:"motion_type"`
	StartLoc   string          `json:"start_loc"`
	EndLoc     string          `json:"end_loc"`
	StartOri   string          `json:"start_ori"`
	EndOri     string          `json:"end_ori"`
	PropRotDir string          `json:"prop_rot_dir"`
	Turns      json.RawMessage `json:"turns"`
}

// flatRecord is one entry of the flat ordered-list shape. A record
// carrying neither hand is sequence metadata; a record with beat 0 is
// the start pose
type flatRecord struct {
	Beat     *int           `json:"beat"`
	Letter   string         `json:"letter"`
	Word     string         `json:"word"`
	Author   string         `json:"author"`
	GridMode string         `json:"grid_mode"`
	Blue     *rawAttributes `json:"blue"`
	Red      *rawAttributes `json:"red"`
}

// nestedDocument is the keyed-object shape: metadata at the top level,
// the start pose under its own key and steps keyed by beat number
type nestedDocument struct {
	Word     string                `json:"word"`
	Author   string                `json:"author"`
	GridMode string                `json:"grid_mode"`
	StartPos *nestedBeat           `json:"start_pos"`
	Beats    map[string]nestedBeat `json:"beats"`
}

type nestedBeat struct {
	Letter string         `json:"letter"`
	Blue   *rawAttributes `json:"blue"`
	Red    *rawAttributes `json:"red"`
}

// Parse adapts a raw JSON document in either supported shape into the
// normalized Sequence model. Both shapes produce identical sequences
// for equivalent content. Structural problems return a *FormatError
func Parse(doc []byte) (*Sequence, error) {
	switch detectShape(doc) {
	case shapeFlat:
		return parseFlat(doc)
	case shapeNested:
		return parseNested(doc)
	default:
		return nil, formatErrorf("unrecognized document shape")
	}
}

// detectShape inspects the first significant byte of the document
func detectShape(doc []byte) docShape {
	trimmed := bytes.TrimLeft(doc, " \t\r\n")
	if len(trimmed) == 0 {
		return shapeUnknown
	}
	switch trimmed[0] {
	case '[':
		return shapeFlat
	case '{':
		return shapeNested
	}
	return shapeUnknown
}

func parseFlat(doc []byte) (*Sequence, error) {
	var records []flatRecord
	if err := json.Unmarshal(doc, &records); err != nil {
		return nil, formatErrorf("flat document: %v", err)
	}

	var b builder
	for _, rec := range records {
		switch {
		case rec.Blue == nil && rec.Red == nil:
			b.setMeta(rec.Word, rec.Author, rec.GridMode)
		case rec.Beat != nil && *rec.Beat == 0:
			b.setStartPose(rec.Blue, rec.Red)
		default:
			b.addStep(rec.Letter, rec.Blue, rec.Red)
		}
	}
	return b.build()
}

func parseNested(doc []byte) (*Sequence, error) {
	var nd nestedDocument
	if err := json.Unmarshal(doc, &nd); err != nil {
		return nil, formatErrorf("nested document: %v", err)
	}

	var b builder
	b.setMeta(nd.Word, nd.Author, nd.GridMode)
	if nd.StartPos != nil {
		b.setStartPose(nd.StartPos.Blue, nd.StartPos.Red)
	}

	// Beat keys are numeric strings ordered by value, not lexically
	type beatKey struct {
		n   int
		key string
	}
	keys := make([]beatKey, 0, len(nd.Beats))
	for k := range nd.Beats {
		n, err := strconv.Atoi(k)
		if err != nil {
			return nil, formatErrorf("beat key %q is not a number", k)
		}
		keys = append(keys, beatKey{n: n, key: k})
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].n < keys[j].n })

	for _, bk := range keys {
		nb := nd.Beats[bk.key]
		b.addStep(nb.Letter, nb.Blue, nb.Red)
	}
	return b.build()
}

// builder accumulates decoded records and produces the normalized
// sequence: beats resequenced 1..N, tokens lowercased, missing start
// attributes backfilled from the previous step's end attributes
type builder struct {
	word, author string
	gridToken    string
	start        *MotionStep
	steps        []MotionStep
}

func (b *builder) setMeta(word, author, gridToken string) {
	if word != "" {
		b.word = strings.TrimSpace(word)
	}
	if author != "" {
		b.author = strings.TrimSpace(author)
	}
	if gridToken != "" {
		b.gridToken = normToken(gridToken)
	}
}

// setStartPose records the beat-zero pose; the first one wins
func (b *builder) setStartPose(blue, red *rawAttributes) {
	if b.start != nil {
		return
	}
	b.start = &MotionStep{
		Blue: normalizeAttrs(blue),
		Red:  normalizeAttrs(red),
	}
}

func (b *builder) addStep(letter string, blue, red *rawAttributes) {
	b.steps = append(b.steps, MotionStep{
		Letter: strings.TrimSpace(letter),
		Blue:   normalizeAttrs(blue),
		Red:    normalizeAttrs(red),
	})
}

func (b *builder) build() (*Sequence, error) {
	if len(b.steps) == 0 {
		return nil, formatErrorf("document contains no steps")
	}

	seq := &Sequence{Word: b.word, Author: b.author, Steps: b.steps}

	if b.start != nil {
		seq.Start = *b.start
	} else {
		// No explicit pose: derive it from the first step's start fields
		first := b.steps[0]
		seq.Start = MotionStep{
			Blue: MotionAttributes{StartLoc: first.Blue.StartLoc, StartOri: first.Blue.StartOri},
			Red:  MotionAttributes{StartLoc: first.Red.StartLoc, StartOri: first.Red.StartOri},
		}
	}
	finishPose(&seq.Start.Blue)
	finishPose(&seq.Start.Red)
	seq.Start.Beat = 0

	if seq.Start.Blue.StartLoc == "" && seq.Start.Red.StartLoc == "" {
		return nil, formatErrorf("document lacks a usable start pose")
	}

	prevBlue, prevRed := seq.Start.Blue, seq.Start.Red
	for i := range seq.Steps {
		st := &seq.Steps[i]
		st.Beat = i + 1
		backfill(&st.Blue, prevBlue)
		backfill(&st.Red, prevRed)
		prevBlue, prevRed = st.Blue, st.Red
	}

	seq.Grid = b.gridMode(seq)
	return seq, nil
}

// finishPose makes the start pose self-contained: it holds position,
// so end fields mirror start fields and the motion is static
func finishPose(a *MotionAttributes) {
	if a.MotionType == "" {
		a.MotionType = "static"
	}
	if a.EndLoc == "" {
		a.EndLoc = a.StartLoc
	}
	if a.EndOri == "" {
		a.EndOri = a.StartOri
	}
}

// backfill fills a step's missing start attributes from the previous
// step's end attributes, falling back to its start attributes
func backfill(cur *MotionAttributes, prev MotionAttributes) {
	if cur.StartLoc == "" {
		cur.StartLoc = prev.EndLoc
		if cur.StartLoc == "" {
			cur.StartLoc = prev.StartLoc
		}
	}
	if cur.StartOri == "" {
		cur.StartOri = prev.EndOri
		if cur.StartOri == "" {
			cur.StartOri = prev.StartOri
		}
	}
}

// gridMode prefers the declared token and otherwise infers box mode
// from the presence of any diagonal location token
func (b *builder) gridMode(seq *Sequence) notation.GridMode {
	if mode, ok := notation.ParseGridMode(b.gridToken); ok {
		return mode
	}

	diagonal := func(a MotionAttributes) bool {
		switch a.StartLoc {
		case "ne", "se", "sw", "nw":
			return true
		}
		switch a.EndLoc {
		case "ne", "se", "sw", "nw":
			return true
		}
		return false
	}

	if diagonal(seq.Start.Blue) || diagonal(seq.Start.Red) {
		return notation.GridBox
	}
	for _, st := range seq.Steps {
		if diagonal(st.Blue) || diagonal(st.Red) {
			return notation.GridBox
		}
	}
	return notation.GridDiamond
}

// normalizeAttrs lowercases the token vocabulary and decodes turns.
// A nil source yields the zero value, which resolves to safe defaults
// at sample time
func normalizeAttrs(raw *rawAttributes) MotionAttributes {
	if raw == nil {
		return MotionAttributes{}
	}
	return MotionAttributes{
		MotionType: normToken(raw.MotionType),
		StartLoc:   normToken(raw.StartLoc),
		EndLoc:     normToken(raw.EndLoc),
		StartOri:   normToken(raw.StartOri),
		EndOri:     normToken(raw.EndOri),
		RotDir:     normToken(raw.PropRotDir),
		Turns:      parseTurns(raw.Turns),
	}
}

func normToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// parseTurns decodes the turns field: a non-negative number of
// half-rotations or a sentinel string marking a continuous count.
// Anything else contributes zero turns
func parseTurns(raw json.RawMessage) Turns {
	if len(raw) == 0 {
		return Turns{}
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n < 0 {
			return Turns{}
		}
		return Turns{Count: int(n)}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return Turns{Continuous: true}
	}
	return Turns{}
}
