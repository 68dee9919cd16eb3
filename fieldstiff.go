// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import "fmt"

// TagID is the numeric identifier of an IFD entry.
type TagID uint16

// Tags with special handling during decoding.
const (
	TagNewSubfileType            TagID = 0x00fe
	TagSubfileType               TagID = 0x00ff
	TagImageWidth                TagID = 0x0100
	TagImageLength               TagID = 0x0101
	TagBitsPerSample             TagID = 0x0102
	TagCompression               TagID = 0x0103
	TagPhotometricInterpretation TagID = 0x0106
	TagThresholding              TagID = 0x0107
	TagFillOrder                 TagID = 0x010a
	TagMake                      TagID = 0x010f
	TagModel                     TagID = 0x0110
	TagStripOffsets              TagID = 0x0111
	TagOrientation               TagID = 0x0112
	TagSamplesPerPixel           TagID = 0x0115
	TagRowsPerStrip              TagID = 0x0116
	TagStripByteCounts           TagID = 0x0117
	TagXResolution               TagID = 0x011a
	TagYResolution               TagID = 0x011b
	TagPlanarConfiguration       TagID = 0x011c
	TagResolutionUnit            TagID = 0x0128
	TagSoftware                  TagID = 0x0131
	TagDateTime                  TagID = 0x0132
	TagPredictor                 TagID = 0x013d
	TagExtraSamples              TagID = 0x0152
	TagSampleFormat              TagID = 0x0153
	TagYCbCrPositioning          TagID = 0x0213
	TagCopyright                 TagID = 0x8298
	TagModelPixelScale           TagID = 0x830e
	TagModelTiepoint             TagID = 0x8482
	TagExifIFDPointer            TagID = 0x8769
	TagGeoKeyDirectory           TagID = 0x87af
	TagGeoDoubleParams           TagID = 0x87b0
	TagGeoAsciiParams            TagID = 0x87b1
	TagGPSIFDPointer             TagID = 0x8825
	TagCalibrationIlluminant1    TagID = 0xc65a
	TagCalibrationIlluminant2    TagID = 0xc65b
)

// Name returns the name of the tag as found in the TIFF/Exif tag tables,
// e.g. "ImageWidth" for 0x0100.
// The GPS and interoperability tables are not consulted,
// see Tag.Name for the name resolved in the directory the tag was found in.
func (t TagID) Name() (string, bool) {
	return TIFFSpace.tagName(t)
}

func (t TagID) String() string {
	if name, found := t.Name(); found {
		return name
	}
	return fmt.Sprintf("UnknownTag_0x%04x", uint16(t))
}

// Baseline, extension and private TIFF tags, including the GeoTIFF and DNG tags.
var tiffFieldNames = map[TagID]string{
	0x00fe: "NewSubfileType",
	0x00ff: "SubfileType",
	0x0100: "ImageWidth",
	0x0101: "ImageLength",
	0x0102: "BitsPerSample",
	0x0103: "Compression",
	0x0106: "PhotometricInterpretation",
	0x0107: "Thresholding",
	0x0108: "CellWidth",
	0x0109: "CellLength",
	0x010a: "FillOrder",
	0x010d: "DocumentName",
	0x010e: "ImageDescription",
	0x010f: "Make",
	0x0110: "Model",
	0x0111: "StripOffsets",
	0x0112: "Orientation",
	0x0115: "SamplesPerPixel",
	0x0116: "RowsPerStrip",
	0x0117: "StripByteCounts",
	0x0118: "MinSampleValue",
	0x0119: "MaxSampleValue",
	0x011a: "XResolution",
	0x011b: "YResolution",
	0x011c: "PlanarConfiguration",
	0x011d: "PageName",
	0x011e: "XPosition",
	0x011f: "YPosition",
	0x0120: "FreeOffsets",
	0x0121: "FreeByteCounts",
	0x0122: "GrayResponseUnit",
	0x0123: "GrayResponseCurve",
	0x0124: "T4Options",
	0x0125: "T6Options",
	0x0128: "ResolutionUnit",
	0x0129: "PageNumber",
	0x012d: "TransferFunction",
	0x0131: "Software",
	0x0132: "DateTime",
	0x013b: "Artist",
	0x013c: "HostComputer",
	0x013d: "Predictor",
	0x013e: "WhitePoint",
	0x013f: "PrimaryChromaticities",
	0x0140: "ColorMap",
	0x0141: "HalftoneHints",
	0x0142: "TileWidth",
	0x0143: "TileLength",
	0x0144: "TileOffsets",
	0x0145: "TileByteCounts",
	0x0146: "BadFaxLines",
	0x0147: "CleanFaxData",
	0x0148: "ConsecutiveBadFaxLines",
	0x014a: "SubIFDs",
	0x014c: "InkSet",
	0x014d: "InkNames",
	0x014e: "NumberOfInks",
	0x0150: "DotRange",
	0x0151: "TargetPrinter",
	0x0152: "ExtraSamples",
	0x0153: "SampleFormat",
	0x0154: "SMinSampleValue",
	0x0155: "SMaxSampleValue",
	0x0156: "TransferRange",
	0x0157: "ClipPath",
	0x0158: "XClipPathUnits",
	0x0159: "YClipPathUnits",
	0x015a: "Indexed",
	0x015b: "JPEGTables",
	0x015f: "OPIProxy",
	0x0190: "GlobalParametersIFD",
	0x0191: "ProfileType",
	0x0192: "FaxProfile",
	0x0193: "CodingMethods",
	0x0194: "VersionYear",
	0x0195: "ModeNumber",
	0x01b1: "Decode",
	0x01b2: "DefaultImageColor",
	0x0200: "JPEGProc",
	0x0201: "JPEGInterchangeFormat",
	0x0202: "JPEGInterchangeFormatLength",
	0x0203: "JPEGRestartInterval",
	0x0205: "JPEGLosslessPredictors",
	0x0206: "JPEGPointTransforms",
	0x0207: "JPEGQTables",
	0x0208: "JPEGDCTables",
	0x0209: "JPEGACTables",
	0x0211: "YCbCrCoefficients",
	0x0212: "YCbCrSubSampling",
	0x0213: "YCbCrPositioning",
	0x0214: "ReferenceBlackWhite",
	0x022f: "StripRowCounts",
	0x02bc: "XMLPacket",
	0x4746: "Rating",
	0x4749: "RatingPercent",
	0x800d: "ImageID",
	0x80a4: "WangAnnotation",
	0x80e3: "Matteing",
	0x80e4: "DataType",
	0x80e5: "ImageDepth",
	0x80e6: "TileDepth",
	0x828d: "CFARepeatPatternDim",
	0x828e: "CFAPattern",
	0x828f: "BatteryLevel",
	0x8298: "Copyright",
	0x82a5: "MDFileTag",
	0x82a6: "MDScalePixel",
	0x82a7: "MDColorTable",
	0x82a8: "MDLabName",
	0x82a9: "MDSampleInfo",
	0x82aa: "MDPrepDate",
	0x82ab: "MDPrepTime",
	0x82ac: "MDFileUnits",
	0x830e: "ModelPixelScaleTag",
	0x83bb: "IPTCNAA",
	0x8482: "ModelTiepointTag",
	0x85d8: "ModelTransformationTag",
	0x8649: "ImageResources",
	0x8769: "ExifIFDPointer",
	0x8773: "InterColorProfile",
	0x87ac: "ImageLayer",
	0x87af: "GeoKeyDirectoryTag",
	0x87b0: "GeoDoubleParamsTag",
	0x87b1: "GeoAsciiParamsTag",
	0x8825: "GPSInfoIFDPointer",
	0x8829: "Interlace",
	0x882a: "TimeZoneOffset",
	0x882b: "SelfTimerMode",
	0x920b: "FlashEnergyEP",
	0x920c: "SpatialFrequencyResponseEP",
	0x920d: "Noise",
	0x920e: "FocalPlaneXResolutionEP",
	0x920f: "FocalPlaneYResolutionEP",
	0x9210: "FocalPlaneResolutionUnitEP",
	0x9211: "ImageNumber",
	0x9212: "SecurityClassification",
	0x9213: "ImageHistory",
	0x9215: "ExposureIndexEP",
	0x9216: "TIFFEPStandardID",
	0x9217: "SensingMethodEP",
	0x935c: "ImageSourceData",
	0x9c9b: "XPTitle",
	0x9c9c: "XPComment",
	0x9c9d: "XPAuthor",
	0x9c9e: "XPKeywords",
	0x9c9f: "XPSubject",
	0xa480: "GDALMetadata",
	0xa481: "GDALNoData",
	0xc4a5: "PrintImageMatching",
	0xc612: "DNGVersion",
	0xc613: "DNGBackwardVersion",
	0xc614: "UniqueCameraModel",
	0xc615: "LocalizedCameraModel",
	0xc616: "CFAPlaneColor",
	0xc617: "CFALayout",
	0xc618: "LinearizationTable",
	0xc619: "BlackLevelRepeatDim",
	0xc61a: "BlackLevel",
	0xc61b: "BlackLevelDeltaH",
	0xc61c: "BlackLevelDeltaV",
	0xc61d: "WhiteLevel",
	0xc61e: "DefaultScale",
	0xc61f: "DefaultCropOrigin",
	0xc620: "DefaultCropSize",
	0xc621: "ColorMatrix1",
	0xc622: "ColorMatrix2",
	0xc623: "CameraCalibration1",
	0xc624: "CameraCalibration2",
	0xc625: "ReductionMatrix1",
	0xc626: "ReductionMatrix2",
	0xc627: "AnalogBalance",
	0xc628: "AsShotNeutral",
	0xc629: "AsShotWhiteXY",
	0xc62a: "BaselineExposure",
	0xc62b: "BaselineNoise",
	0xc62c: "BaselineSharpness",
	0xc62d: "BayerGreenSplit",
	0xc62e: "LinearResponseLimit",
	0xc62f: "CameraSerialNumber",
	0xc630: "LensInfo",
	0xc631: "ChromaBlurRadius",
	0xc632: "AntiAliasStrength",
	0xc633: "ShadowScale",
	0xc634: "DNGPrivateData",
	0xc635: "MakerNoteSafety",
	0xc65a: "CalibrationIlluminant1",
	0xc65b: "CalibrationIlluminant2",
	0xc65c: "BestQualityScale",
	0xc65d: "RawDataUniqueID",
	0xc68b: "OriginalRawFileName",
	0xc68c: "OriginalRawFileData",
	0xc68d: "ActiveArea",
	0xc68e: "MaskedAreas",
	0xc68f: "AsShotICCProfile",
	0xc690: "AsShotPreProfileMatrix",
	0xc691: "CurrentICCProfile",
	0xc692: "CurrentPreProfileMatrix",
	0xc6bf: "ColorimetricReference",
	0xc6f3: "CameraCalibrationSignature",
	0xc6f4: "ProfileCalibrationSignature",
	0xc6f6: "AsShotProfileName",
	0xc6f7: "NoiseReductionApplied",
	0xc6f8: "ProfileName",
	0xc6f9: "ProfileHueSatMapDims",
	0xc6fa: "ProfileHueSatMapData1",
	0xc6fb: "ProfileHueSatMapData2",
	0xc6fc: "ProfileToneCurve",
	0xc6fd: "ProfileEmbedPolicy",
	0xc6fe: "ProfileCopyright",
	0xc714: "ForwardMatrix1",
	0xc715: "ForwardMatrix2",
	0xc716: "PreviewApplicationName",
	0xc717: "PreviewApplicationVersion",
	0xc718: "PreviewSettingsName",
	0xc719: "PreviewSettingsDigest",
	0xc71a: "PreviewColorSpace",
	0xc71b: "PreviewDateTime",
	0xc71c: "RawImageDigest",
	0xc71d: "OriginalRawFileDigest",
	0xc71e: "SubTileBlockSize",
	0xc71f: "RowInterleaveFactor",
	0xc725: "ProfileLookTableDims",
	0xc726: "ProfileLookTableData",
	0xc740: "OpcodeList1",
	0xc741: "OpcodeList2",
	0xc74e: "OpcodeList3",
	0xc761: "NoiseProfile",
	0xea1c: "Padding",
	0xea1d: "OffsetSchema",
}
