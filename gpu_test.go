package xform

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestUniformMat3ColumnMajor(t *testing.T) {
	m := All(1, 2, 3, 4, 5, 6, 7, 8, 9)
	want := [12]float32{1, 4, 7, 0, 2, 5, 8, 0, 3, 6, 9, 0}
	if got := m.UniformMat3(); got != want {
		t.Errorf("UniformMat3() = %v, want %v", got, want)
	}
}

func TestAppendUniform(t *testing.T) {
	m := Translate(10, 20)
	prefix := []byte{0xAA, 0xBB}
	buf := m.AppendUniform(prefix)
	if len(buf) != len(prefix)+UniformMat3Size {
		t.Fatalf("len = %d, want %d", len(buf), len(prefix)+UniformMat3Size)
	}
	if buf[0] != 0xAA || buf[1] != 0xBB {
		t.Error("AppendUniform overwrote the prefix")
	}

	body := buf[len(prefix):]
	read := func(i int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(body[i*4:]))
	}
	// Translation lives in the third column.
	if read(8) != 10 || read(9) != 20 || read(10) != 1 {
		t.Errorf("translation column = (%v, %v, %v)", read(8), read(9), read(10))
	}
	if read(0) != 1 || read(5) != 1 || read(3) != 0 {
		t.Errorf("unexpected diagonal or padding: %v %v %v", read(0), read(5), read(3))
	}
}

func TestInstanceLayout(t *testing.T) {
	layout := InstanceLayout(3)
	if layout.ArrayStride != UniformMat3Size {
		t.Errorf("ArrayStride = %d, want %d", layout.ArrayStride, UniformMat3Size)
	}
	if layout.StepMode != gputypes.VertexStepModeInstance {
		t.Errorf("StepMode = %v, want instance", layout.StepMode)
	}
	if len(layout.Attributes) != 3 {
		t.Fatalf("len(Attributes) = %d, want 3", len(layout.Attributes))
	}
	for i, attr := range layout.Attributes {
		if attr.Format != gputypes.VertexFormatFloat32x4 {
			t.Errorf("attribute %d format = %v", i, attr.Format)
		}
		if attr.ShaderLocation != uint32(3+i) {
			t.Errorf("attribute %d location = %d, want %d", i, attr.ShaderLocation, 3+i)
		}
	}
	a := layout.Attributes
	if a[0].Offset != 0 || a[1].Offset != 16 || a[2].Offset != 32 {
		t.Errorf("offsets = %d, %d, %d, want 0, 16, 32", a[0].Offset, a[1].Offset, a[2].Offset)
	}
}
