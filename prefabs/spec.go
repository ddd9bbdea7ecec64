package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type TransformSpec struct {
	Position Vec3Spec `yaml:"position"`
	YawDeg   float64  `yaml:"yaw_deg"`
	PitchDeg float64  `yaml:"pitch_deg"`
}

type CameraSpec struct {
	Name      string        `yaml:"name"`
	Target    string        `yaml:"target"`
	Transform TransformSpec `yaml:"transform"`
	Offset    Vec3Spec      `yaml:"offset"`
	FovDeg    float64       `yaml:"fov_deg"`
	Near      float64       `yaml:"near"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Offset == (Vec3Spec{}) {
		spec.Offset = Vec3Spec{X: 0, Y: 5, Z: 10}
	}
	if spec.FovDeg == 0 {
		spec.FovDeg = 45
	}
	if spec.Near == 0 {
		spec.Near = 0.1
	}
	return &spec, nil
}

type PlayerSpec struct {
	Name       string        `yaml:"name"`
	Transform  TransformSpec `yaml:"transform"`
	MoveDelta  float64       `yaml:"move_delta"`
	Radius     float64       `yaml:"radius"`
	Mass       float64       `yaml:"mass"`
	Friction   float64       `yaml:"friction"`
	Elasticity float64       `yaml:"elasticity"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if spec.MoveDelta == 0 {
		spec.MoveDelta = 0.1
	}
	if spec.Radius == 0 {
		spec.Radius = 0.5
	}
	if spec.Mass == 0 {
		spec.Mass = 1
	}
	return &spec, nil
}

type FloorSpec struct {
	Name      string   `yaml:"name"`
	Size      Vec3Spec `yaml:"size"`
	TiltDeg   float64  `yaml:"tilt_deg"`
	YOffset   float64  `yaml:"y_offset"`
	Interval  float64  `yaml:"interval"`
	Friction  float64  `yaml:"friction"`
	Script    string   `yaml:"script"`
	PlaneSize float64  `yaml:"plane_size"`
}

func LoadFloorSpec() (*FloorSpec, error) {
	spec, err := LoadSpec[FloorSpec]("floor.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Size == (Vec3Spec{}) {
		spec.Size = Vec3Spec{X: 10, Y: 1, Z: 50}
	}
	if spec.TiltDeg == 0 {
		spec.TiltDeg = -22.5
	}
	if spec.YOffset == 0 {
		spec.YOffset = -2
	}
	if spec.Interval == 0 {
		spec.Interval = 10
	}
	if spec.PlaneSize == 0 {
		spec.PlaneSize = 200
	}
	return &spec, nil
}

type SkyboxSpec struct {
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
}

func LoadSkyboxSpec() (*SkyboxSpec, error) {
	spec, err := LoadSpec[SkyboxSpec]("skybox.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Image == "" {
		spec.Image = "skybox.png"
	}
	return &spec, nil
}

type LightSpec struct {
	Name      string        `yaml:"name"`
	Transform TransformSpec `yaml:"transform"`
	Intensity float64       `yaml:"intensity"`
	Range     float64       `yaml:"range"`
}

func LoadLightSpec() (*LightSpec, error) {
	spec, err := LoadSpec[LightSpec]("light.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Intensity == 0 {
		spec.Intensity = 600000
	}
	if spec.Range == 0 {
		spec.Range = 100
	}
	return &spec, nil
}

type DecorSpec struct {
	Name      string  `yaml:"name"`
	PerSeg    int     `yaml:"per_segment"`
	Seed      int64   `yaml:"seed"`
	MaxHeight float64 `yaml:"max_height"`
	Spread    float64 `yaml:"spread"`
}

func LoadDecorSpec() (*DecorSpec, error) {
	spec, err := LoadSpec[DecorSpec]("decor.yaml")
	if err != nil {
		return nil, err
	}
	if spec.PerSeg == 0 {
		spec.PerSeg = 2
	}
	if spec.Seed == 0 {
		spec.Seed = 1
	}
	if spec.MaxHeight == 0 {
		spec.MaxHeight = 2
	}
	if spec.Spread == 0 {
		spec.Spread = 4
	}
	return &spec, nil
}
