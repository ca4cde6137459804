package main

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"github.com/librypt/librypt-int/internal/limbplan"
	"go.uber.org/zap"
)

type generator struct {
	log *zap.Logger
}

type typeData struct {
	Name   string // exported type name, "U24"
	Lower  string // prefix for unexported identifiers, "u24"
	Bits   int
	Bytes  int
	Words  int
	Layout string

	// Limbs are most significant first, the declared field order. Arithmetic
	// walks LSB, which is the same limbs reversed.
	Limbs []limbData
	LSB   []limbData
}

type limbData struct {
	Field  string
	Type   string
	Bits   int
	Offset int // bit offset from the least significant end
	Byte   int // Offset / 8
	Wide   bool
	Last   bool // least significant limb
}

func newTypeData(layout limbplan.Layout) typeData {
	bits := layout.Bits()
	td := typeData{
		Name:   fmt.Sprintf("U%d", bits),
		Lower:  fmt.Sprintf("u%d", bits),
		Bits:   bits,
		Bytes:  layout.Bytes(),
		Words:  layout.Words(),
		Layout: layout.String(),
	}
	for i := 0; i < layout.Len(); i++ {
		w := layout.Limb(i)
		td.Limbs = append(td.Limbs, limbData{
			Field:  fmt.Sprintf("l%d", i),
			Type:   w.GoType(),
			Bits:   w.Bits(),
			Offset: layout.Offset(i),
			Byte:   layout.Offset(i) / 8,
			Wide:   w == limbplan.Limb128,
			Last:   i == layout.Len()-1,
		})
	}
	for i := len(td.Limbs) - 1; i >= 0; i-- {
		td.LSB = append(td.LSB, td.Limbs[i])
	}
	return td
}

func (g *generator) render(bits int) ([]byte, error) {
	layout, err := limbplan.Plan(bits)
	if err != nil {
		return nil, err
	}

	td := newTypeData(layout)
	g.log.Debug("planned type",
		zap.String("type", td.Name),
		zap.String("layout", td.Layout),
		zap.Int("words", td.Words))

	var buf bytes.Buffer
	if err := typeTemplate.Execute(&buf, td); err != nil {
		return nil, fmt.Errorf("bitintgen: render %s: %w", td.Name, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("bitintgen: format %s: %w", td.Name, err)
	}
	return src, nil
}

var typeTemplate = template.Must(template.New("type").Parse(typeSource))
