// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obj parses the Wavefront OBJ file format (*.obj), including
// associated materials (*.mtl), into flat per-object arrays.
// Not all features of the OBJ format are supported: free-form curves,
// surfaces and display attributes are skipped with a warning.
// Basic format info: https://en.wikipedia.org/wiki/Wavefront_.obj_file
//
// Every distinct combination of position, texture coordinate and normal
// referenced by the faces of a model becomes one vertex of that model,
// and polygons are split into triangle fans, so that the result can be
// used directly as an indexed triangle mesh.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Mesh holds the geometry of one [Model]. Positions and Normals have
// 3 values per vertex and TexCoords 2 values per vertex. Normals and
// TexCoords are empty if the faces of the model do not reference them.
type Mesh struct {
	Positions []float32
	Normals   []float32
	TexCoords []float32

	// Indices are triangle indices into this mesh's vertices,
	// 3 per triangle.
	Indices []uint32

	// MaterialID is the index of the material of the mesh
	// in the material list, or -1 if it has none.
	MaterialID int
}

// NumVertex returns the number of vertices in the mesh.
func (ms *Mesh) NumVertex() int {
	return len(ms.Positions) / 3
}

// Model is a named object of an OBJ file. An object that switches
// material part way through is split into one model per material,
// all with the same name.
type Model struct {
	Name string
	Mesh Mesh
}

// Local constants
const (
	blanks  = "\r\n\t "
	noIndex = -1
	objType = "obj"
	mtlType = "mtl"

	// defaultName is the name of faces outside any named object.
	defaultName = "unnamed"
)

// vertexRef is one v/vt/vn reference of a face, as 0-based indices
// into the file-wide arrays, with noIndex for absent parts.
type vertexRef struct {
	v, vt, vn int
}

// face is one polygon, with the line it was read from.
type face struct {
	refs []vertexRef
	line int
}

// group is the set of faces read for one model, before its
// vertices are built.
type group struct {
	name     string
	material string
	faces    []face
}

// Decoder contains all decoded data from the obj and mtl files.
type Decoder struct {
	// Models are the decoded models, in file order.
	Models []Model

	// Materials are the decoded materials, in the order they were defined.
	Materials []Material

	// MaterialLibs are the names of the material libraries
	// referenced with mtllib.
	MaterialLibs []string

	// Warnings are messages about unsupported or inconsistent input
	// that was skipped.
	Warnings []string

	positions  []float32
	normals    []float32
	uvs        []float32
	groups     []group
	line       int
	ftype      string
	current    *group
	matIndex   map[string]int
	matCurrent *Material
}

// NewDecoder returns a new empty [Decoder].
func NewDecoder() *Decoder {
	return &Decoder{matIndex: map[string]int{}}
}

// DecodeObj reads the given OBJ data. The models are not built until
// [Decoder.Build] is called, so that material libraries can be decoded
// in between with [Decoder.DecodeMtl].
func (dec *Decoder) DecodeObj(r io.Reader) error {
	dec.current = nil
	err := dec.parse(r, objType, dec.parseObjLine)
	dec.flushGroup()
	return err
}

// DecodeMtl reads the given MTL data, adding to [Decoder.Materials].
// A material with the same name as an earlier one replaces it.
func (dec *Decoder) DecodeMtl(r io.Reader) error {
	dec.matCurrent = nil
	return dec.parse(r, mtlType, dec.parseMtlLine)
}

// Build builds [Decoder.Models] from the faces read by [Decoder.DecodeObj]
// and resolves their materials against [Decoder.Materials].
func (dec *Decoder) Build() error {
	dec.Models = make([]Model, 0, len(dec.groups))
	for gi := range dec.groups {
		gp := &dec.groups[gi]
		md, err := dec.buildModel(gp)
		if err != nil {
			return err
		}
		dec.Models = append(dec.Models, md)
	}
	for _, w := range dec.Warnings {
		slog.Debug("obj: " + w)
	}
	return nil
}

// buildModel turns the faces of the given group into a model,
// creating one vertex per distinct reference.
func (dec *Decoder) buildModel(gp *group) (Model, error) {
	md := Model{Name: gp.name}
	md.Mesh.MaterialID = noIndex
	if gp.material != "" {
		if mi, ok := dec.matIndex[gp.material]; ok {
			md.Mesh.MaterialID = mi
		} else {
			dec.appendWarn(objType, fmt.Sprintf("could not find material: %s for object %s", gp.material, gp.name))
		}
	}

	vidx := map[vertexRef]uint32{}
	var refs []vertexRef
	index := func(fc *face, ref vertexRef) (uint32, error) {
		if i, ok := vidx[ref]; ok {
			return i, nil
		}
		if ref.v < 0 || 3*ref.v >= len(dec.positions) {
			return 0, &ParseError{File: objType, Line: fc.line, Msg: fmt.Sprintf("vertex index %d out of range", ref.v+1)}
		}
		if ref.vt != noIndex && (ref.vt < 0 || 2*ref.vt >= len(dec.uvs)) {
			return 0, &ParseError{File: objType, Line: fc.line, Msg: fmt.Sprintf("uv index %d out of range", ref.vt+1)}
		}
		if ref.vn != noIndex && (ref.vn < 0 || 3*ref.vn >= len(dec.normals)) {
			return 0, &ParseError{File: objType, Line: fc.line, Msg: fmt.Sprintf("normal index %d out of range", ref.vn+1)}
		}
		i := uint32(len(refs))
		vidx[ref] = i
		refs = append(refs, ref)
		return i, nil
	}

	for fi := range gp.faces {
		fc := &gp.faces[fi]
		// triangle fan: 0, i-1, i
		for i := 2; i < len(fc.refs); i++ {
			for _, ref := range [3]vertexRef{fc.refs[0], fc.refs[i-1], fc.refs[i]} {
				idx, err := index(fc, ref)
				if err != nil {
					return md, err
				}
				md.Mesh.Indices = append(md.Mesh.Indices, idx)
			}
		}
	}

	hasNorm, hasUV := len(refs) > 0, len(refs) > 0
	for _, ref := range refs {
		hasNorm = hasNorm && ref.vn != noIndex
		hasUV = hasUV && ref.vt != noIndex
	}
	dec.warnPartial(gp.name, "normals", refs, func(r vertexRef) bool { return r.vn != noIndex }, hasNorm)
	dec.warnPartial(gp.name, "texture coordinates", refs, func(r vertexRef) bool { return r.vt != noIndex }, hasUV)

	ms := &md.Mesh
	ms.Positions = make([]float32, 0, 3*len(refs))
	for _, ref := range refs {
		ms.Positions = append(ms.Positions, dec.positions[3*ref.v:3*ref.v+3]...)
		if hasNorm {
			ms.Normals = append(ms.Normals, dec.normals[3*ref.vn:3*ref.vn+3]...)
		}
		if hasUV {
			ms.TexCoords = append(ms.TexCoords, dec.uvs[2*ref.vt:2*ref.vt+2]...)
		}
	}
	return md, nil
}

// warnPartial records a warning when only some of the vertices of a
// model have the given attribute, in which case it is dropped.
func (dec *Decoder) warnPartial(name, attr string, refs []vertexRef, has func(vertexRef) bool, all bool) {
	if all {
		return
	}
	for _, ref := range refs {
		if has(ref) {
			dec.Warnings = append(dec.Warnings, fmt.Sprintf("%s: only some vertices of object %s have %s; ignoring them", objType, name, attr))
			return
		}
	}
}

// parse reads the lines from the specified reader and dispatch them
// to the specified line parser.
func (dec *Decoder) parse(reader io.Reader, ftype string, parseLine func(string) error) error {
	bufin := bufio.NewReader(reader)
	dec.line = 1
	dec.ftype = ftype
	for {
		// Reads next line and abort on errors (not EOF)
		line, err := bufin.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		line = strings.Trim(line, blanks)
		perr := parseLine(line)
		if perr != nil {
			return perr
		}
		if err == io.EOF {
			break
		}
		dec.line++
	}
	return nil
}

// Parses obj file line, dispatching to specific parsers
func (dec *Decoder) parseObjLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	ltype := fields[0]
	if strings.HasPrefix(ltype, "#") {
		return nil
	}
	switch ltype {
	case "mtllib":
		return dec.parseMatlib(fields[1:])
	// groups are treated the same as objects
	case "o", "g":
		return dec.parseObject(fields[1:])
	case "v":
		return dec.parseFloats(fields[1:], 3, &dec.positions, "v")
	case "vn":
		return dec.parseFloats(fields[1:], 3, &dec.normals, "vn")
	case "vt":
		return dec.parseFloats(fields[1:], 2, &dec.uvs, "vt")
	case "f":
		return dec.parseFace(fields[1:])
	case "usemtl":
		return dec.parseUsemtl(fields[1:])
	case "s":
		// smoothing groups do not affect the mesh data
		return nil
	default:
		dec.appendWarn(objType, "field not supported: "+ltype)
	}
	return nil
}

// Parses a mtllib line:
// mtllib <name> [<name> ...]
func (dec *Decoder) parseMatlib(fields []string) error {
	if len(fields) < 1 {
		return dec.formatError("mtllib with no fields")
	}
	dec.MaterialLibs = append(dec.MaterialLibs, fields...)
	return nil
}

// Parses an object line:
// o [<name>]
// A line without a name selects the default object.
func (dec *Decoder) parseObject(fields []string) error {
	name := defaultName
	if len(fields) > 0 {
		name = strings.Join(fields, " ")
	}
	mat := ""
	if dec.current != nil {
		mat = dec.current.material
	}
	dec.startGroup(name, mat)
	return nil
}

// startGroup flushes the current group and starts a new one.
func (dec *Decoder) startGroup(name, material string) {
	dec.flushGroup()
	dec.current = &group{name: name, material: material}
}

// flushGroup adds the current group to the list if it has any faces.
func (dec *Decoder) flushGroup() {
	if dec.current != nil && len(dec.current.faces) > 0 {
		dec.groups = append(dec.groups, *dec.current)
	}
	if dec.current != nil {
		dec.current = &group{name: dec.current.name, material: dec.current.material}
	}
}

// parseFloats parses the first n fields as float32 values onto the given array:
// v <x> <y> <z> [w]
// vn <x> <y> <z>
// vt <u> <v> [w]
func (dec *Decoder) parseFloats(fields []string, n int, ary *[]float32, ltype string) error {
	if len(fields) < n {
		return dec.formatError(fmt.Sprintf("less than %d values in '%s' line", n, ltype))
	}
	for _, f := range fields[:n] {
		val, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return dec.wrapError(err)
		}
		*ary = append(*ary, float32(val))
	}
	return nil
}

// parseFace parses a face decription line:
// f v1[/vt1][/vn1] v2[/vt2][/vn2] v3[/vt3][/vn3] ...
func (dec *Decoder) parseFace(fields []string) error {
	if dec.current == nil {
		// faces before any g or o line go in a default object
		dec.startGroup(defaultName, "")
	}
	if len(fields) < 3 {
		return dec.formatError("face line with less than 3 fields")
	}
	fc := face{refs: make([]vertexRef, len(fields)), line: dec.line}
	for pos, f := range fields {
		vfields := strings.Split(f, "/")
		ref := vertexRef{v: noIndex, vt: noIndex, vn: noIndex}
		var err error
		// the vertex position must always exist
		ref.v, err = dec.parseIndex(vfields[0], len(dec.positions)/3, "vertex")
		if err != nil {
			return err
		}
		if len(vfields) > 1 && len(vfields[1]) > 0 {
			ref.vt, err = dec.parseIndex(vfields[1], len(dec.uvs)/2, "uv")
			if err != nil {
				return err
			}
		}
		if len(vfields) > 2 && len(vfields[2]) > 0 {
			ref.vn, err = dec.parseIndex(vfields[2], len(dec.normals)/3, "normal")
			if err != nil {
				return err
			}
		}
		fc.refs[pos] = ref
	}
	dec.current.faces = append(dec.current.faces, fc)
	return nil
}

// parseIndex parses one 1-based face index. Positive indices are
// absolute and negative indices are relative to the n elements
// read so far.
func (dec *Decoder) parseIndex(s string, n int, what string) (int, error) {
	val, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, dec.wrapError(err)
	}
	switch {
	case val > 0:
		return int(val - 1), nil
	case val < 0:
		if n+int(val) < 0 {
			return 0, dec.formatError(fmt.Sprintf("face %s index %d out of range", what, val))
		}
		return n + int(val), nil
	default:
		return 0, dec.formatError(fmt.Sprintf("face %s index value equal to 0", what))
	}
}

// parseUsemtl parses a "usemtl" decription line:
// usemtl <name>
func (dec *Decoder) parseUsemtl(fields []string) error {
	if len(fields) < 1 {
		return dec.formatError("usemtl with no fields")
	}
	name := fields[0]
	if dec.current == nil {
		dec.startGroup(defaultName, name)
		return nil
	}
	if dec.current.material == name {
		return nil
	}
	// a new material starts a new model with the same name
	dec.startGroup(dec.current.name, name)
	return nil
}

func (dec *Decoder) formatError(msg string) error {
	return &ParseError{File: dec.ftype, Line: dec.line, Msg: msg}
}

func (dec *Decoder) wrapError(err error) error {
	return &ParseError{File: dec.ftype, Line: dec.line, Msg: err.Error(), Err: err}
}

func (dec *Decoder) appendWarn(ftype string, msg string) {
	wline := fmt.Sprintf("%s(%d): %s", ftype, dec.line, msg)
	dec.Warnings = append(dec.Warnings, wline)
}

// ParseError is returned for malformed OBJ or MTL data.
type ParseError struct {
	// File is the file type, "obj" or "mtl".
	File string

	// Line is the 1-based line number of the error.
	Line int

	Msg string

	// Err is the underlying error, if any.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s in line:%d", e.File, e.Msg, e.Line)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
