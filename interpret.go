// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import (
	"fmt"
	"strconv"
	"strings"
)

// Symbol is the symbolic meaning of an enumerated tag value, e.g. "LZW" for Compression 5.
type Symbol string

type valueConverterContext struct {
	tag   TagID
	name  string
	warnf func(format string, args ...any)
}

// valueConverter converts the decoded value of a known tag into its interpreted form.
// It must return v unchanged if it cannot be interpreted.
type valueConverter func(ctx valueConverterContext, v any) any

var (
	tiffValueConverters = map[TagID]valueConverter{
		TagSubfileType:               subfileTypeValues.convert,
		TagCompression:               compressionValues.convert,
		TagPhotometricInterpretation: photometricValues.convert,
		TagThresholding:              thresholdingValues.convert,
		TagFillOrder:                 fillOrderValues.convert,
		TagOrientation:               orientationValues.convert,
		TagPlanarConfiguration:       planarConfigurationValues.convert,
		TagResolutionUnit:            resolutionUnitValues.convert,
		TagPredictor:                 predictorValues.convert,
		TagExtraSamples:              extraSamplesValues.convert,
		TagSampleFormat:              sampleFormatValues.convert,
		TagYCbCrPositioning:          yCbCrPositioningValues.convert,
		TagExposureProgram:           exposureProgramValues.convert,
		TagMeteringMode:              meteringModeValues.convert,
		TagLightSource:               lightSourceValues.convert,
		TagCalibrationIlluminant1:    lightSourceValues.convert,
		TagCalibrationIlluminant2:    lightSourceValues.convert,
		TagFlash:                     convertFlash,
		TagExifVersion:               convertVersion,
		TagFlashpixVersion:           convertVersion,
		TagColorSpace:                colorSpaceValues.convert,
		TagFocalPlaneResolutionUnit:  resolutionUnitValues.convert,
		TagSensingMethod:             sensingMethodValues.convert,
		TagFileSource:                fileSourceValues.convert,
		TagSceneType:                 sceneTypeValues.convert,
		TagCustomRendered:            customRenderedValues.convert,
		TagExposureMode:              exposureModeValues.convert,
		TagWhiteBalance:              whiteBalanceValues.convert,
		TagSceneCaptureType:          sceneCaptureTypeValues.convert,
		TagGainControl:               gainControlValues.convert,
		TagContrast:                  contrastValues.convert,
		TagSaturation:                saturationValues.convert,
		TagSharpness:                 sharpnessValues.convert,
		TagSubjectDistanceRange:      subjectDistanceRangeValues.convert,
		TagGeoKeyDirectory:           convertGeoKeyDirectory,
	}

	gpsValueConverters = map[TagID]valueConverter{
		TagGPSAltitudeRef: gpsAltitudeRefValues.convert,
	}

	interopValueConverters = map[TagID]valueConverter{
		TagInteroperabilityVersion: convertVersion,
	}
)

// enumValues maps a stored value to its Symbol.
// An empty Symbol means the value is defined to carry no meaning,
// e.g. MeteringMode 0 (unknown), and is interpreted as nil.
type enumValues map[uint32]Symbol

func (m enumValues) convert(ctx valueConverterContext, v any) any {
	k, ok := toUint32(v)
	if !ok {
		switch v.(type) {
		case []uint8, []uint16, []uint32:
			// Multi-valued, e.g. SampleFormat with one value per sample.
		default:
			ctx.warnf("%s: unexpected value of type %T, keeping raw value", ctx.name, v)
		}
		return v
	}
	s, found := m[k]
	if !found {
		return v
	}
	if s == "" {
		return nil
	}
	return s
}

var (
	subfileTypeValues = enumValues{
		1: "FullResolution",
		2: "ReducedResolution",
		3: "SinglePage",
	}

	compressionValues = enumValues{
		1:     "None",
		2:     "CCITTRLE",
		3:     "CCITTFax3",
		4:     "CCITTFax4",
		5:     "LZW",
		6:     "OldJPEG",
		7:     "JPEG",
		8:     "AdobeDeflate",
		9:     "JBIGBW",
		10:    "JBIGColor",
		32766: "NeXT",
		32771: "CCITTRLEW",
		32773: "PackBits",
		32809: "ThunderScan",
		32946: "Deflate",
		34661: "JBIG",
		34712: "JPEG2000",
		34892: "LossyJPEG",
		50000: "ZSTD",
		50001: "WebP",
	}

	photometricValues = enumValues{
		0:     "WhiteIsZero",
		1:     "BlackIsZero",
		2:     "RGB",
		3:     "Palette",
		4:     "TransparencyMask",
		5:     "CMYK",
		6:     "YCbCr",
		8:     "CIELab",
		9:     "ICCLab",
		10:    "ITULab",
		32803: "ColorFilterArray",
		32844: "LogL",
		32845: "LogLuv",
		34892: "LinearRaw",
	}

	thresholdingValues = enumValues{
		1: "NoDithering",
		2: "OrderedDither",
		3: "RandomDither",
	}

	fillOrderValues = enumValues{
		1: "MSBToLSB",
		2: "LSBToMSB",
	}

	orientationValues = enumValues{
		1: "TopLeft",
		2: "TopRight",
		3: "BottomRight",
		4: "BottomLeft",
		5: "LeftTop",
		6: "RightTop",
		7: "RightBottom",
		8: "LeftBottom",
	}

	planarConfigurationValues = enumValues{
		1: "Chunky",
		2: "Planar",
	}

	resolutionUnitValues = enumValues{
		1: "", // No absolute unit.
		2: "Inch",
		3: "Centimeter",
	}

	predictorValues = enumValues{
		1: "None",
		2: "HorizontalDifferencing",
		3: "FloatingPoint",
	}

	extraSamplesValues = enumValues{
		0: "",
		1: "AssociatedAlpha",
		2: "UnassociatedAlpha",
	}

	sampleFormatValues = enumValues{
		1: "UnsignedInteger",
		2: "SignedInteger",
		3: "IEEEFloat",
		4: "", // Undefined.
		5: "ComplexSignedInteger",
		6: "ComplexIEEEFloat",
	}

	yCbCrPositioningValues = enumValues{
		1: "Centered",
		2: "CoSited",
	}

	exposureProgramValues = enumValues{
		0: "",
		1: "Manual",
		2: "Normal",
		3: "AperturePriority",
		4: "ShutterPriority",
		5: "Creative",
		6: "Action",
		7: "Portrait",
		8: "Landscape",
	}

	meteringModeValues = enumValues{
		0:   "",
		1:   "Average",
		2:   "CenterWeightedAverage",
		3:   "Spot",
		4:   "MultiSpot",
		5:   "Pattern",
		6:   "Partial",
		255: "Other",
	}

	lightSourceValues = enumValues{
		0:   "",
		1:   "Daylight",
		2:   "Fluorescent",
		3:   "Tungsten",
		4:   "Flash",
		9:   "FineWeather",
		10:  "CloudyWeather",
		11:  "Shade",
		12:  "DaylightFluorescent",
		13:  "DayWhiteFluorescent",
		14:  "CoolWhiteFluorescent",
		15:  "WhiteFluorescent",
		16:  "WarmWhiteFluorescent",
		17:  "StandardLightA",
		18:  "StandardLightB",
		19:  "StandardLightC",
		20:  "D55",
		21:  "D65",
		22:  "D75",
		23:  "D50",
		24:  "ISOStudioTungsten",
		255: "Other",
	}

	colorSpaceValues = enumValues{
		1:      "SRGB",
		2:      "AdobeRGB",
		0xffff: "Uncalibrated",
	}

	sensingMethodValues = enumValues{
		1: "",
		2: "OneChipColorArea",
		3: "TwoChipColorArea",
		4: "ThreeChipColorArea",
		5: "ColorSequentialArea",
		7: "Trilinear",
		8: "ColorSequentialLinear",
	}

	fileSourceValues = enumValues{
		1: "FilmScanner",
		2: "ReflectionPrintScanner",
		3: "DigitalCamera",
	}

	sceneTypeValues = enumValues{
		1: "DirectlyPhotographed",
	}

	customRenderedValues = enumValues{
		0: "Normal",
		1: "Custom",
	}

	exposureModeValues = enumValues{
		0: "Auto",
		1: "Manual",
		2: "AutoBracket",
	}

	whiteBalanceValues = enumValues{
		0: "Auto",
		1: "Manual",
	}

	sceneCaptureTypeValues = enumValues{
		0: "Standard",
		1: "Landscape",
		2: "Portrait",
		3: "Night",
	}

	gainControlValues = enumValues{
		0: "None",
		1: "LowGainUp",
		2: "HighGainUp",
		3: "LowGainDown",
		4: "HighGainDown",
	}

	contrastValues = enumValues{
		0: "Normal",
		1: "Soft",
		2: "Hard",
	}

	saturationValues = enumValues{
		0: "Normal",
		1: "Low",
		2: "High",
	}

	sharpnessValues = enumValues{
		0: "Normal",
		1: "Soft",
		2: "Hard",
	}

	subjectDistanceRangeValues = enumValues{
		0: "",
		1: "Macro",
		2: "CloseView",
		3: "DistantView",
	}

	gpsAltitudeRefValues = enumValues{
		0: "AboveSeaLevel",
		1: "BelowSeaLevel",
	}
)

// Flash flags.
const (
	FlashFired             Symbol = "Fired"
	FlashReturnNotDetected Symbol = "ReturnNotDetected"
	FlashReturnDetected    Symbol = "ReturnDetected"
	FlashModeForcedOn      Symbol = "ModeForcedOn"
	FlashModeDisabled      Symbol = "ModeDisabled"
	FlashModeAuto          Symbol = "ModeAuto"
	FlashNoFunction        Symbol = "NoFunction"
	FlashRedEyeReduction   Symbol = "RedEyeReduction"
)

// FlashFlags is the decoded Flash bit field in bit order.
type FlashFlags []Symbol

// Has reports whether flag is set.
func (f FlashFlags) Has(flag Symbol) bool {
	for _, s := range f {
		if s == flag {
			return true
		}
	}
	return false
}

func (f FlashFlags) String() string {
	ss := make([]string, len(f))
	for i, s := range f {
		ss[i] = string(s)
	}
	return "{" + strings.Join(ss, ", ") + "}"
}

// decodeFlash decodes the Exif Flash bit field:
//
//	bit 0: flash fired.
//	bits 1-2: strobe return, only meaningful if bit 2 is set.
//	bits 3-4: flash mode.
//	bit 5: no flash function.
//	bit 6: red-eye reduction.
func decodeFlash(v uint16) FlashFlags {
	flags := FlashFlags{}
	if v&0x01 != 0 {
		flags = append(flags, FlashFired)
	}
	if v&0x04 != 0 {
		if v&0x02 != 0 {
			flags = append(flags, FlashReturnDetected)
		} else {
			flags = append(flags, FlashReturnNotDetected)
		}
	}
	switch (v >> 3) & 0x03 {
	case 1:
		flags = append(flags, FlashModeForcedOn)
	case 2:
		flags = append(flags, FlashModeDisabled)
	case 3:
		flags = append(flags, FlashModeAuto)
	}
	if v&0x20 != 0 {
		flags = append(flags, FlashNoFunction)
	}
	if v&0x40 != 0 {
		flags = append(flags, FlashRedEyeReduction)
	}
	return flags
}

func convertFlash(ctx valueConverterContext, v any) any {
	n, ok := toUint32(v)
	if !ok || n > 0xffff {
		ctx.warnf("%s: unexpected value of type %T, keeping raw value", ctx.name, v)
		return v
	}
	return decodeFlash(uint16(n))
}

// Version is a version number stored as 4 ASCII digits, e.g. "0230" for 2.30.
type Version struct {
	Major int
	Minor int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

func parseVersion(s string) (Version, error) {
	if len(s) != 4 {
		return Version{}, fmt.Errorf("expected 4 digits, got %q", s)
	}
	major, err := strconv.ParseUint(s[:2], 10, 8)
	if err != nil {
		return Version{}, err
	}
	minor, err := strconv.ParseUint(s[2:], 10, 8)
	if err != nil {
		return Version{}, err
	}
	return Version{Major: int(major), Minor: int(minor)}, nil
}

func convertVersion(ctx valueConverterContext, v any) any {
	var s string
	switch vv := v.(type) {
	case []uint8:
		s = string(vv)
	case string:
		s = vv
	default:
		ctx.warnf("%s: unexpected value of type %T, keeping raw value", ctx.name, v)
		return v
	}
	version, err := parseVersion(s)
	if err != nil {
		ctx.warnf("%s: %s, keeping raw value", ctx.name, err)
		return v
	}
	return version
}
