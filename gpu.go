package xform

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// UniformMat3Size is the byte size of a WGSL mat3x3<f32>: three columns,
// each padded to 16 bytes.
const UniformMat3Size = 48

// UniformMat3 returns the matrix in WGSL mat3x3<f32> memory order:
// column-major, each column padded with a trailing zero.
func (m Matrix) UniformMat3() [12]float32 {
	a := &m.mat
	return [12]float32{
		float32(a[MScaleX]), float32(a[MSkewY]), float32(a[MPersp0]), 0,
		float32(a[MSkewX]), float32(a[MScaleY]), float32(a[MPersp1]), 0,
		float32(a[MTransX]), float32(a[MTransY]), float32(a[MPersp2]), 0,
	}
}

// AppendUniform appends the UniformMat3 bytes (little-endian) to buf.
func (m Matrix) AppendUniform(buf []byte) []byte {
	for _, v := range m.UniformMat3() {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	return buf
}

// InstanceLayout describes a per-instance vertex buffer holding one
// AppendUniform record per instance. The three columns are exposed as
// float32x4 attributes at shader locations first, first+1 and first+2,
// which a vertex shader reassembles into a mat3x3<f32>.
func InstanceLayout(first uint32) gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: UniformMat3Size,
		StepMode:    gputypes.VertexStepModeInstance,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: first},      // column 0
			{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: first + 1}, // column 1
			{Format: gputypes.VertexFormatFloat32x4, Offset: 32, ShaderLocation: first + 2}, // column 2
		},
	}
}
