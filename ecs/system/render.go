package system

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/slope/common"
	"github.com/milk9111/slope/ecs"
	"github.com/milk9111/slope/ecs/component"
	"github.com/milk9111/slope/ecs/render"
)

var whiteImage = ebiten.NewImage(3, 3)
var whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

func init() {
	whiteImage.Fill(color.White)
}

var (
	floorColor = [3]float64{0.9, 0.9, 0.92}
	decorColor = [3]float64{0.55, 0.6, 0.5}
	ballColor  = [3]float64{0.0, 1.0, 0.0}
	skyFallbck = color.RGBA{R: 0x87, G: 0xae, B: 0xe8, A: 0xff}
)

// RenderSystem perspective-projects the scene each Draw: box faces are
// painter-sorted and flat-shaded from the point light, the ball is a
// shaded disc, and the skybox face behind the camera heading fills the
// background.
type RenderSystem struct {
	camEntity ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

type projFace struct {
	xs    [4]float32
	ys    [4]float32
	depth float64
	col   [3]float64
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !r.camEntity.Valid() || !ecs.IsAlive(w, r.camEntity) {
		camEntity, ok := w.First(component.CameraTagComponent.Kind())
		if !ok {
			screen.Fill(skyFallbck)
			return
		}
		r.camEntity = camEntity
	}
	camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind())
	if !ok {
		screen.Fill(skyFallbck)
		return
	}

	fov, near := 45.0, 0.1
	if cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok {
		if cam.FovDeg > 0 {
			fov = cam.FovDeg
		}
		if cam.Near > 0 {
			near = cam.Near
		}
	}

	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())
	basis := common.BasisFromYawPitch(camTransform.Yaw, camTransform.Pitch)
	eye := camTransform.Position
	focal := (sh / 2) / math.Tan(common.Deg2Rad(fov)/2)

	r.drawSky(w, screen, camTransform.Yaw, sw, sh)

	lightPos := common.Vec3{X: 50, Y: 50, Z: 50}
	lightRange := 100.0
	if lightEntity, ok := w.First(component.PointLightComponent.Kind()); ok {
		if lt, ok := ecs.Get(w, lightEntity, component.TransformComponent.Kind()); ok {
			lightPos = lt.Position
		}
		if pl, ok := ecs.Get(w, lightEntity, component.PointLightComponent.Kind()); ok && pl.Range > 0 {
			lightRange = pl.Range
		}
	}

	project := func(p common.Vec3) (float32, float32, float64, bool) {
		d := p.Sub(eye)
		z := d.Dot(basis.Forward)
		if z < near {
			return 0, 0, 0, false
		}
		x := sw/2 + focal*d.Dot(basis.Right)/z
		y := sh/2 - focal*d.Dot(basis.Up)/z
		return float32(x), float32(y), z, true
	}

	var faces []projFace
	addBox := func(center common.Vec3, size common.Vec3, pitch float64, col [3]float64) {
		faces = append(faces, boxFaces(center, size, pitch, col, eye, lightPos, lightRange, project)...)
	}

	for _, e := range w.Query(component.FloorSegmentComponent.Kind(), component.TransformComponent.Kind()) {
		seg, _ := ecs.Get(w, e, component.FloorSegmentComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if seg == nil || t == nil {
			continue
		}
		addBox(t.Position, seg.Size, t.Pitch, floorColor)
	}
	for _, e := range w.Query(component.DecorComponent.Kind(), component.TransformComponent.Kind()) {
		dec, _ := ecs.Get(w, e, component.DecorComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if dec == nil || t == nil {
			continue
		}
		addBox(t.Position, dec.Size, 0, decorColor)
	}

	sort.Slice(faces, func(i, j int) bool {
		return faces[i].depth > faces[j].depth
	})
	for i := range faces {
		drawQuad(screen, &faces[i])
	}

	r.drawBall(w, screen, eye, lightPos, lightRange, project)
}

func (r *RenderSystem) drawSky(w *ecs.World, screen *ebiten.Image, yaw, sw, sh float64) {
	skyEntity, ok := w.First(component.SkyboxComponent.Kind())
	if !ok {
		screen.Fill(skyFallbck)
		return
	}
	sky, ok := ecs.Get(w, skyEntity, component.SkyboxComponent.Kind())
	if !ok || sky.Status != component.SkyboxLoaded || sky.Layers == 0 {
		screen.Fill(skyFallbck)
		return
	}

	// pick the face behind the camera heading
	quadrant := int(math.Round(yaw/(math.Pi/2))) % 4
	if quadrant < 0 {
		quadrant += 4
	}
	idx := quadrant % sky.Layers
	face := render.FromImage(fmt.Sprintf("%s:%d", sky.Source, idx), sky.Faces[idx])
	if face == nil {
		screen.Fill(skyFallbck)
		return
	}

	op := &ebiten.DrawImageOptions{}
	fb := face.Bounds()
	op.GeoM.Scale(sw/float64(fb.Dx()), sh/float64(fb.Dy()))
	screen.DrawImage(face, op)
}

func (r *RenderSystem) drawBall(w *ecs.World, screen *ebiten.Image, eye, lightPos common.Vec3, lightRange float64, project func(common.Vec3) (float32, float32, float64, bool)) {
	for _, e := range w.Query(component.PlayerTagComponent.Kind(), component.TransformComponent.Kind()) {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if t == nil {
			continue
		}
		radius := 0.5
		if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok && p.Radius > 0 {
			radius = p.Radius
		}

		x, y, depth, visible := project(t.Position)
		if !visible {
			continue
		}
		screenRadius := float32(projectedRadius(radius, depth, screen))

		shade := shadeAt(t.Position, eye.Sub(t.Position).Normalize(), lightPos, lightRange)
		vector.DrawFilledCircle(screen, x, y, screenRadius, scaleColor(ballColor, shade), true)
	}
}

func projectedRadius(radius, depth float64, screen *ebiten.Image) float64 {
	sh := float64(screen.Bounds().Dy())
	focal := (sh / 2) / math.Tan(common.Deg2Rad(45)/2)
	return focal * radius / depth
}

var boxFaceDefs = []struct {
	corners [4]int
	normal  common.Vec3
}{
	{[4]int{3, 2, 6, 7}, common.Vec3{Y: 1}},
	{[4]int{0, 1, 5, 4}, common.Vec3{Y: -1}},
	{[4]int{0, 1, 2, 3}, common.Vec3{Z: -1}},
	{[4]int{4, 5, 6, 7}, common.Vec3{Z: 1}},
	{[4]int{0, 3, 7, 4}, common.Vec3{X: -1}},
	{[4]int{1, 2, 6, 5}, common.Vec3{X: 1}},
}

func boxFaces(center, size common.Vec3, pitch float64, col [3]float64, eye, lightPos common.Vec3, lightRange float64, project func(common.Vec3) (float32, float32, float64, bool)) []projFace {
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2
	locals := [8]common.Vec3{
		{X: -hx, Y: -hy, Z: -hz},
		{X: hx, Y: -hy, Z: -hz},
		{X: hx, Y: hy, Z: -hz},
		{X: -hx, Y: hy, Z: -hz},
		{X: -hx, Y: -hy, Z: hz},
		{X: hx, Y: -hy, Z: hz},
		{X: hx, Y: hy, Z: hz},
		{X: -hx, Y: hy, Z: hz},
	}
	var world [8]common.Vec3
	for i, l := range locals {
		world[i] = center.Add(common.RotateAboutX(l, pitch))
	}

	out := make([]projFace, 0, 3)
	for _, def := range boxFaceDefs {
		normal := common.RotateAboutX(def.normal, pitch)
		faceCenter := common.Vec3{}
		for _, ci := range def.corners {
			faceCenter = faceCenter.Add(world[ci])
		}
		faceCenter = faceCenter.Scale(0.25)
		if normal.Dot(faceCenter.Sub(eye)) >= 0 {
			continue // facing away
		}

		var pf projFace
		visible := true
		depth := 0.0
		for i, ci := range def.corners {
			x, y, z, ok := project(world[ci])
			if !ok {
				visible = false
				break
			}
			pf.xs[i], pf.ys[i] = x, y
			depth += z
		}
		if !visible {
			continue
		}
		pf.depth = depth / 4
		pf.col = scaleRGB(col, shadeAt(faceCenter, normal, lightPos, lightRange))
		out = append(out, pf)
	}
	return out
}

// shadeAt is a lambert term with linear distance falloff plus a floor
// of ambient light.
func shadeAt(p, normal, lightPos common.Vec3, lightRange float64) float64 {
	toLight := lightPos.Sub(p)
	dist := toLight.Length()
	lambert := math.Max(0, normal.Dot(toLight.Normalize()))
	atten := math.Max(0, 1-dist/lightRange)
	return 0.35 + 0.65*lambert*atten
}

func scaleRGB(col [3]float64, s float64) [3]float64 {
	return [3]float64{col[0] * s, col[1] * s, col[2] * s}
}

func scaleColor(col [3]float64, s float64) color.Color {
	return color.RGBA{
		R: uint8(math.Min(col[0]*s, 1) * 255),
		G: uint8(math.Min(col[1]*s, 1) * 255),
		B: uint8(math.Min(col[2]*s, 1) * 255),
		A: 0xff,
	}
}

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

func drawQuad(screen *ebiten.Image, f *projFace) {
	vs := make([]ebiten.Vertex, 4)
	for i := 0; i < 4; i++ {
		vs[i] = ebiten.Vertex{
			DstX:   f.xs[i],
			DstY:   f.ys[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(f.col[0]),
			ColorG: float32(f.col[1]),
			ColorB: float32(f.col[2]),
			ColorA: 1,
		}
	}
	screen.DrawTriangles(vs, quadIndices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
