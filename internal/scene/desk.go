package scene

import "github.com/Faultbox/deskscene/pkg/mesh"

// Desk dimensions.
const (
	batteryCaseRadius     = 0.1
	batteryCaseHeight     = 0.7
	batteryTerminalRadius = 0.035
	batteryTerminalHeight = 0.02
	batteryRotation       = 116.0
	batteryScale          = 2.0
	batterySpecular       = 0.7

	// CylinderSlices is the roundness of every prism in the desk scene.
	CylinderSlices = 60

	ampWidth           = 0.33
	ampHeight          = 0.08
	ampLength          = 0.66
	ampScale           = 5.0
	ampSpecular        = 0.65
	volumeKnobRadius   = 0.04
	volumeKnobHeight   = 0.025
	ampSideZFightNudge = 0.0001

	// SphereSegments is the marble's tessellation.
	SphereSegments = 64
	marbleScale    = 0.25
	marbleSpecular = 0.9

	phoneBoxWidth    = 0.28
	phoneBoxHeight   = 0.19
	phoneBoxLength   = 0.52
	phoneBoxScale    = 11.5
	phoneBoxSpecular = 0.4

	tableLength   = 1.0
	tableWidth    = 1.0
	tableScale    = 10.0
	tableSpecular = 0.25

	windowLength    = 1.0
	windowWidth     = 1.0
	windowScale     = 20.0
	windowIntensity = 0.9
)

var (
	axisX = [3]float32{1, 0, 0}
	axisY = [3]float32{0, 1, 0}
	axisZ = [3]float32{0, 0, 1}

	sunlight = [3]float32{0.95, 0.90, 0.80}
)

func prismSide(radius, height float32) ShapeSpec {
	return SpecOf(mesh.PrismSide{Slices: CylinderSlices, Radius: radius, Height: height})
}

func prismFace(top bool, radius float32) ShapeSpec {
	return SpecOf(mesh.PrismFace{Top: top, Slices: CylinderSlices, Radius: radius})
}

// Desk returns the built-in desk scene: two batteries, an amplifier, a
// marble and a phone box on a table, lit by three windows.
func Desk() *Scene {
	s := &Scene{Name: "desk"}
	s.Objects = append(s.Objects, battery("battery_1", 3, 0, -11.5)...)
	s.Objects = append(s.Objects, battery("battery_2", 4, 0, -11.5)...)
	s.Objects = append(s.Objects, amp(0.3, 0, -8.5)...)
	s.Objects = append(s.Objects,
		Object{
			Name:      "marble",
			Shape:     SpecOf(mesh.Sphere{Segments: SphereSegments}),
			Transform: Uniform([3]float32{1.1, 0 + marbleScale, -7.5}, marbleScale),
			Specular:  marbleSpecular,
		},
		Object{
			Name:      "phone_box",
			Shape:     SpecOf(mesh.Cuboid{Width: phoneBoxWidth, Height: phoneBoxHeight, Length: phoneBoxLength}),
			Transform: Uniform([3]float32{-4, 0, -7}, phoneBoxScale),
			Specular:  phoneBoxSpecular,
		},
		Object{
			Name:      "table",
			Shape:     SpecOf(mesh.Plane{Length: tableLength, Width: tableWidth}),
			Transform: Uniform([3]float32{0, -0.0001, -10}, tableScale),
			Specular:  tableSpecular,
		},
	)

	s.Lights = []Light{
		window("window_back", [3]float32{0, 15, -50}, axisX),
		window("window_left", [3]float32{-40, 15, -5}, axisZ),
		window("window_right", [3]float32{40, 15, -5}, axisZ),
	}
	return s
}

func battery(name string, x, y, z float32) []Object {
	var caseHeight float32 = batteryCaseHeight
	var terminalHeight float32 = batteryTerminalHeight
	var scale float32 = batteryScale

	part := func(suffix string, shape ShapeSpec, py float32) Object {
		return Object{
			Name:      name + "_" + suffix,
			Shape:     shape,
			Transform: Uniform([3]float32{x, py, z}, batteryScale).Rotated(batteryRotation, axisY),
			Specular:  batterySpecular,
		}
	}

	return []Object{
		part("case_side", prismSide(batteryCaseRadius, batteryCaseHeight), y),
		part("case_top", prismFace(true, batteryCaseRadius), y+caseHeight*scale),
		part("case_bottom", prismFace(false, batteryCaseRadius), y),
		part("terminal_side", prismSide(batteryTerminalRadius, batteryTerminalHeight), y+caseHeight*scale),
		part("terminal_top", prismFace(true, batteryTerminalRadius), y+(caseHeight+terminalHeight)*scale),
	}
}

func amp(x, y, z float32) []Object {
	var scale float32 = ampScale
	var length float32 = ampLength
	var knobRadius float32 = volumeKnobRadius
	var knobHeight float32 = volumeKnobHeight
	var nudge float32 = ampSideZFightNudge
	var width float32 = ampWidth

	knobOffset := width * scale
	sideY := y + knobRadius*scale
	back := z - length*scale

	part := func(name string, shape ShapeSpec, pos [3]float32) Object {
		return Object{
			Name:      name,
			Shape:     shape,
			Transform: Uniform(pos, ampScale).Rotated(90, axisX),
			Specular:  ampSpecular,
		}
	}

	return []Object{
		{
			Name:      "amp_body",
			Shape:     SpecOf(mesh.Cuboid{Width: ampWidth, Height: ampHeight, Length: ampLength}),
			Transform: Uniform([3]float32{x, y, z}, ampScale),
			Specular:  ampSpecular,
		},
		part("volume_knob_side", prismSide(volumeKnobRadius, volumeKnobHeight), [3]float32{x + knobOffset, sideY, z}),
		part("volume_knob_front", prismFace(true, volumeKnobRadius), [3]float32{x + knobOffset, sideY, z + knobHeight*scale}),
		part("amp_side_right", prismSide(volumeKnobRadius, ampLength), [3]float32{x + knobOffset, sideY, back}),
		part("amp_side_right_back", prismFace(false, volumeKnobRadius), [3]float32{x + knobOffset, sideY, z + nudge - length*scale}),
		part("amp_side_left", prismSide(volumeKnobRadius, ampLength), [3]float32{x, sideY, back}),
		part("amp_side_left_back", prismFace(false, volumeKnobRadius), [3]float32{x, sideY, z + nudge - length*scale}),
		part("amp_side_left_front", prismFace(true, volumeKnobRadius), [3]float32{x, sideY, z - nudge}),
	}
}

func window(name string, pos, axis [3]float32) Light {
	return Light{
		Name:      name,
		Color:     sunlight,
		Intensity: windowIntensity,
		Length:    windowLength,
		Width:     windowWidth,
		Transform: Uniform(pos, windowScale).Rotated(90, axis),
	}
}
