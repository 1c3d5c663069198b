// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obj

import (
	"strconv"
	"strings"
)

// Material contains all information about an object material
type Material struct {
	Name string

	// Ambient, Diffuse and Specular are the reflectivity colors (Ka, Kd, Ks).
	Ambient  [3]float32
	Diffuse  [3]float32
	Specular [3]float32

	// Shininess is the specular exponent (Ns).
	Shininess float32

	// Dissolve is the opacity factor (d, or 1 - Tr), 1 for opaque.
	Dissolve float32

	// OpticalDensity is the index of refraction (Ni).
	OpticalDensity float32

	// Illum is the illumination model (0 to 10).
	Illum int

	// texture image files
	AmbientTexture  string
	DiffuseTexture  string
	SpecularTexture string
	NormalTexture   string
	DissolveTexture string
}

// newMaterial returns a material with the given name and
// the defaults used for properties missing from the file.
func newMaterial(name string) Material {
	return Material{Name: name, Dissolve: 1, OpticalDensity: 1}
}

// Parses material file line, dispatching to specific parsers
func (dec *Decoder) parseMtlLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	ltype := fields[0]
	if strings.HasPrefix(ltype, "#") {
		return nil
	}
	if ltype == "newmtl" {
		return dec.parseNewmtl(fields[1:])
	}
	if dec.matCurrent == nil {
		return dec.formatError("'" + ltype + "' before newmtl")
	}
	mat := dec.matCurrent
	switch ltype {
	case "Ka":
		return dec.parseColor(fields[1:], ltype, &mat.Ambient)
	case "Kd":
		return dec.parseColor(fields[1:], ltype, &mat.Diffuse)
	case "Ks":
		return dec.parseColor(fields[1:], ltype, &mat.Specular)
	case "Ns":
		return dec.parseFloat(fields[1:], ltype, &mat.Shininess)
	case "Ni":
		return dec.parseFloat(fields[1:], ltype, &mat.OpticalDensity)
	case "d":
		return dec.parseFloat(fields[1:], ltype, &mat.Dissolve)
	case "Tr":
		var tr float32
		if err := dec.parseFloat(fields[1:], ltype, &tr); err != nil {
			return err
		}
		mat.Dissolve = 1 - tr
		return nil
	case "illum":
		return dec.parseIllum(fields[1:])
	case "map_Ka":
		return dec.parseMap(fields[1:], ltype, &mat.AmbientTexture)
	case "map_Kd":
		return dec.parseMap(fields[1:], ltype, &mat.DiffuseTexture)
	case "map_Ks":
		return dec.parseMap(fields[1:], ltype, &mat.SpecularTexture)
	case "map_Bump", "map_bump", "bump", "norm":
		return dec.parseMap(fields[1:], ltype, &mat.NormalTexture)
	case "map_d":
		return dec.parseMap(fields[1:], ltype, &mat.DissolveTexture)
	default:
		dec.appendWarn(mtlType, "field not supported: "+ltype)
	}
	return nil
}

// Parses new material definition
// newmtl <mat_name>
func (dec *Decoder) parseNewmtl(fields []string) error {
	if len(fields) < 1 {
		return dec.formatError("newmtl with no fields")
	}
	name := fields[0]
	mi, ok := dec.matIndex[name]
	if ok {
		dec.Materials[mi] = newMaterial(name)
	} else {
		mi = len(dec.Materials)
		dec.matIndex[name] = mi
		dec.Materials = append(dec.Materials, newMaterial(name))
	}
	dec.matCurrent = &dec.Materials[mi]
	return nil
}

// Parses a color:
// Ka r g b
func (dec *Decoder) parseColor(fields []string, ltype string, clr *[3]float32) error {
	if len(fields) < 3 {
		return dec.formatError("'" + ltype + "' with less than 3 fields")
	}
	for pos, f := range fields[:3] {
		val, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return dec.wrapError(err)
		}
		clr[pos] = float32(val)
	}
	return nil
}

// Parses a single float value:
// Ns <specular_exponent>
func (dec *Decoder) parseFloat(fields []string, ltype string, v *float32) error {
	if len(fields) < 1 {
		return dec.formatError("'" + ltype + "' with no fields")
	}
	val, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return dec.wrapError(err)
	}
	*v = float32(val)
	return nil
}

// Parses illumination model (0 to 10)
// illum <ilum_#>
func (dec *Decoder) parseIllum(fields []string) error {
	if len(fields) < 1 {
		return dec.formatError("'illum' with no fields")
	}
	val, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return dec.wrapError(err)
	}
	dec.matCurrent.Illum = int(val)
	return nil
}

// Parses a texture map, ignoring any options:
// map_Kd [-options] <filename>
func (dec *Decoder) parseMap(fields []string, ltype string, fname *string) error {
	if len(fields) < 1 {
		return dec.formatError("'" + ltype + "' with no fields")
	}
	// options come first and take one or more numeric or on/off
	// arguments, so the file name is the last field
	*fname = fields[len(fields)-1]
	return nil
}
