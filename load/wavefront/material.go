// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wavefront

import (
	"github.com/dylanmckay/mash"
	"github.com/dylanmckay/mash/load/obj"
)

// Material is a material of a [Wavefront] scene.
type Material struct {
	mat *obj.Material
}

// Name returns the name of the material.
func (m *Material) Name() string { return m.mat.Name }

// AmbientColor returns the ambient color (Ka).
func (m *Material) AmbientColor() mash.Color { return color(m.mat.Ambient) }

// DiffuseColor returns the diffuse color (Kd).
func (m *Material) DiffuseColor() mash.Color { return color(m.mat.Diffuse) }

// SpecularColor returns the specular color (Ks).
func (m *Material) SpecularColor() mash.Color { return color(m.mat.Specular) }

// Shininess returns the specular exponent (Ns).
func (m *Material) Shininess() float32 { return m.mat.Shininess }

// Alpha returns the opacity factor, 1 for fully opaque.
func (m *Material) Alpha() float32 { return m.mat.Dissolve }

// OpticalDensity returns the index of refraction (Ni).
func (m *Material) OpticalDensity() float32 { return m.mat.OpticalDensity }

// AmbientTexture returns the ambient texture image file, or "".
func (m *Material) AmbientTexture() string { return m.mat.AmbientTexture }

// DiffuseTexture returns the diffuse texture image file, or "".
func (m *Material) DiffuseTexture() string { return m.mat.DiffuseTexture }

// SpecularTexture returns the specular texture image file, or "".
func (m *Material) SpecularTexture() string { return m.mat.SpecularTexture }

// NormalTexture returns the normal map image file, or "".
func (m *Material) NormalTexture() string { return m.mat.NormalTexture }

// DissolveTexture returns the dissolve texture image file, or "".
func (m *Material) DissolveTexture() string { return m.mat.DissolveTexture }

func color(c [3]float32) mash.Color {
	return mash.Color{R: c[0], G: c[1], B: c[2]}
}
