package common

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func vecAlmostEqual(a, b Vec3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"start", 0, 10, 0, 0},
		{"end", 0, 10, 1, 10},
		{"halfway", -5, 5, 0.5, 0},
		{"extrapolate", 0, 10, 1.5, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.t); !almostEqual(got, tt.want) {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

func TestRotateAboutX(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec3
		angle float64
		want  Vec3
	}{
		{"identity", Vec3{X: 1, Y: 2, Z: 3}, 0, Vec3{X: 1, Y: 2, Z: 3}},
		{"quarter_turn_z_to_neg_y", Vec3{Z: 1}, math.Pi / 2, Vec3{Y: -1}},
		{"quarter_turn_y_to_z", Vec3{Y: 1}, math.Pi / 2, Vec3{Z: 1}},
		{"x_unchanged", Vec3{X: 7}, 1.234, Vec3{X: 7}},
		{"half_turn", Vec3{Y: 1, Z: 1}, math.Pi, Vec3{Y: -1, Z: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RotateAboutX(tt.v, tt.angle); !vecAlmostEqual(got, tt.want) {
				t.Errorf("RotateAboutX(%v, %v) = %v, want %v", tt.v, tt.angle, got, tt.want)
			}
		})
	}
}

func TestRotateAboutXPreservesLength(t *testing.T) {
	v := Vec3{X: 1, Y: -2, Z: 3}
	for _, angle := range []float64{0.1, Deg2Rad(-22.5), 2.7, -1.9} {
		got := RotateAboutX(v, angle)
		if !almostEqual(got.Length(), v.Length()) {
			t.Errorf("rotation by %v changed length: %v -> %v", angle, v.Length(), got.Length())
		}
	}
}

func TestLookRotationRecoversForward(t *testing.T) {
	tests := []struct {
		name        string
		eye, target Vec3
	}{
		{"straight_ahead", Vec3{}, Vec3{Z: -10}},
		{"behind_and_above", Vec3{Y: 5, Z: 10}, Vec3{}},
		{"off_axis", Vec3{X: 3, Y: 1, Z: 2}, Vec3{X: -4, Y: 6, Z: -9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaw, pitch := LookRotation(tt.eye, tt.target)
			basis := BasisFromYawPitch(yaw, pitch)
			want := tt.target.Sub(tt.eye).Normalize()
			if !vecAlmostEqual(basis.Forward, want) {
				t.Errorf("forward = %v, want %v", basis.Forward, want)
			}
		})
	}
}

func TestBasisIsOrthonormal(t *testing.T) {
	for _, angles := range []struct{ yaw, pitch float64 }{
		{0, 0},
		{1.1, -0.4},
		{-2.8, 0.9},
	} {
		b := BasisFromYawPitch(angles.yaw, angles.pitch)
		for name, v := range map[string]Vec3{"right": b.Right, "up": b.Up, "forward": b.Forward} {
			if !almostEqual(v.Length(), 1) {
				t.Errorf("yaw=%v pitch=%v: %s has length %v", angles.yaw, angles.pitch, name, v.Length())
			}
		}
		if !almostEqual(b.Right.Dot(b.Forward), 0) || !almostEqual(b.Right.Dot(b.Up), 0) || !almostEqual(b.Up.Dot(b.Forward), 0) {
			t.Errorf("yaw=%v pitch=%v: basis not orthogonal", angles.yaw, angles.pitch)
		}
	}
}
