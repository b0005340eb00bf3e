package anime4k

// PipelineSource names one predefined pipeline source file.
type PipelineSource struct {
	// Name is the catalog identifier, e.g. "RESTORE_CNN_M".
	Name string
	// File is the source path relative to the shader asset root.
	File string
	// Hook marks mpv hook-format GLSL sources; unset means a YAML
	// manifest.
	Hook bool
}

// PredefinedAux lists the auxiliary pipelines: pre- and post-processing
// passes such as color clamping, deblurring, and denoising, defined as YAML
// manifests.
var PredefinedAux = []PipelineSource{
	// Image processing utilities
	{Name: "CLAMP_HIGHLIGHTS", File: "wgsl/auxiliary/clamp_highlights_manifest.yaml"},
	// Deblur algorithms
	{Name: "DEBLUR_DOG", File: "wgsl/auxiliary/deblur_dog_manifest.yaml"},
	{Name: "DEBLUR_ORIGINAL", File: "wgsl/auxiliary/deblur_original_manifest.yaml"},
	// Denoise algorithms with different statistical approaches
	{Name: "DENOISE_BILATERAL_MEAN", File: "wgsl/auxiliary/denoise_bilateral_mean_manifest.yaml"},
	{Name: "DENOISE_BILATERAL_MEDIAN", File: "wgsl/auxiliary/denoise_bilateral_median_manifest.yaml"},
	{Name: "DENOISE_BILATERAL_MODE", File: "wgsl/auxiliary/denoise_bilateral_mode_manifest.yaml"},
	// Visual effects with different performance profiles
	{Name: "EFFECTS_DARKEN_HQ", File: "wgsl/auxiliary/effects_darken_manifest_hq.yaml"},
	{Name: "EFFECTS_DARKEN_FAST", File: "wgsl/auxiliary/effects_darken_manifest_fast.yaml"},
	{Name: "EFFECTS_DARKEN_VERYFAST", File: "wgsl/auxiliary/effects_darken_manifest_veryfast.yaml"},
	{Name: "EFFECTS_THIN_HQ", File: "wgsl/auxiliary/effects_thin_manifest_hq.yaml"},
	{Name: "EFFECTS_THIN_FAST", File: "wgsl/auxiliary/effects_thin_manifest_fast.yaml"},
	{Name: "EFFECTS_THIN_VERYFAST", File: "wgsl/auxiliary/effects_thin_manifest_veryfast.yaml"},
	// Alternative upscaling algorithms
	{Name: "UPSCALE_DOG_X2", File: "wgsl/auxiliary/upscale_dog_x2_manifest.yaml"},
	{Name: "UPSCALE_ORIGINAL_X2", File: "wgsl/auxiliary/upscale_original_x2_manifest.yaml"},
}

// PredefinedCNN lists the CNN and GAN pipelines, sourced from mpv
// hook-format GLSL and translated to WGSL at compile time.
var PredefinedCNN = []PipelineSource{
	// Restore variants - improve image quality without upscaling
	{Name: "RESTORE_CNN_S", File: "anime4k-glsl/Restore/Anime4K_Restore_CNN_S.glsl", Hook: true},
	{Name: "RESTORE_CNN_M", File: "anime4k-glsl/Restore/Anime4K_Restore_CNN_M.glsl", Hook: true},
	{Name: "RESTORE_CNN_L", File: "anime4k-glsl/Restore/Anime4K_Restore_CNN_L.glsl", Hook: true},
	{Name: "RESTORE_CNN_VL", File: "anime4k-glsl/Restore/Anime4K_Restore_CNN_VL.glsl", Hook: true},
	{Name: "RESTORE_CNN_UL", File: "anime4k-glsl/Restore/Anime4K_Restore_CNN_UL.glsl", Hook: true},
	// Restore GAN variants
	{Name: "RESTORE_GAN_UL", File: "anime4k-glsl/Restore/Anime4K_Restore_GAN_UL.glsl", Hook: true},
	{Name: "RESTORE_GAN_UUL", File: "anime4k-glsl/Restore/Anime4K_Restore_GAN_UUL.glsl", Hook: true},
	// Restore Soft variants - gentler restoration
	{Name: "RESTORE_SOFT_CNN_S", File: "anime4k-glsl/Restore/Anime4K_Restore_CNN_Soft_S.glsl", Hook: true},
	{Name: "RESTORE_SOFT_CNN_M", File: "anime4k-glsl/Restore/Anime4K_Restore_CNN_Soft_M.glsl", Hook: true},
	{Name: "RESTORE_SOFT_CNN_L", File: "anime4k-glsl/Restore/Anime4K_Restore_CNN_Soft_L.glsl", Hook: true},
	{Name: "RESTORE_SOFT_CNN_VL", File: "anime4k-glsl/Restore/Anime4K_Restore_CNN_Soft_VL.glsl", Hook: true},
	{Name: "RESTORE_SOFT_CNN_UL", File: "anime4k-glsl/Restore/Anime4K_Restore_CNN_Soft_UL.glsl", Hook: true},
	// Upscale variants - 2x upscaling at different quality levels
	{Name: "UPSCALE_CNN_X2_S", File: "anime4k-glsl/Upscale/Anime4K_Upscale_CNN_x2_S.glsl", Hook: true},
	{Name: "UPSCALE_CNN_X2_M", File: "anime4k-glsl/Upscale/Anime4K_Upscale_CNN_x2_M.glsl", Hook: true},
	{Name: "UPSCALE_CNN_X2_L", File: "anime4k-glsl/Upscale/Anime4K_Upscale_CNN_x2_L.glsl", Hook: true},
	{Name: "UPSCALE_CNN_X2_VL", File: "anime4k-glsl/Upscale/Anime4K_Upscale_CNN_x2_VL.glsl", Hook: true},
	{Name: "UPSCALE_CNN_X2_UL", File: "anime4k-glsl/Upscale/Anime4K_Upscale_CNN_x2_UL.glsl", Hook: true},
	// Upscale GAN variants
	{Name: "UPSCALE_GAN_X2_S", File: "anime4k-glsl/Upscale/Anime4K_Upscale_GAN_x2_S.glsl", Hook: true},
	{Name: "UPSCALE_GAN_X2_M", File: "anime4k-glsl/Upscale/Anime4K_Upscale_GAN_x2_M.glsl", Hook: true},
	{Name: "UPSCALE_GAN_X3_L", File: "anime4k-glsl/Upscale/Anime4K_Upscale_GAN_x3_L.glsl", Hook: true},
	{Name: "UPSCALE_GAN_X3_VL", File: "anime4k-glsl/Upscale/Anime4K_Upscale_GAN_x3_VL.glsl", Hook: true},
	{Name: "UPSCALE_GAN_X4_UL", File: "anime4k-glsl/Upscale/Anime4K_Upscale_GAN_x4_UL.glsl", Hook: true},
	{Name: "UPSCALE_GAN_X4_UUL", File: "anime4k-glsl/Upscale/Anime4K_Upscale_GAN_x4_UUL.glsl", Hook: true},
	// Upscale + Denoise variants
	{Name: "UPSCALE_DENOISE_CNN_X2_S", File: "anime4k-glsl/Upscale+Denoise/Anime4K_Upscale_Denoise_CNN_x2_S.glsl", Hook: true},
	{Name: "UPSCALE_DENOISE_CNN_X2_M", File: "anime4k-glsl/Upscale+Denoise/Anime4K_Upscale_Denoise_CNN_x2_M.glsl", Hook: true},
	{Name: "UPSCALE_DENOISE_CNN_X2_L", File: "anime4k-glsl/Upscale+Denoise/Anime4K_Upscale_Denoise_CNN_x2_L.glsl", Hook: true},
	{Name: "UPSCALE_DENOISE_CNN_X2_VL", File: "anime4k-glsl/Upscale+Denoise/Anime4K_Upscale_Denoise_CNN_x2_VL.glsl", Hook: true},
	{Name: "UPSCALE_DENOISE_CNN_X2_UL", File: "anime4k-glsl/Upscale+Denoise/Anime4K_Upscale_Denoise_CNN_x2_UL.glsl", Hook: true},
	// 3D graphics variants
	{Name: "UPSCALE_3DCG_CNN_X2_US", File: "anime4k-glsl/Upscale/Anime4K_3DGraphics_Upscale_x2_US.glsl", Hook: true},
	{Name: "UPSCALE_3DCG_AA_CNN_X2_US", File: "anime4k-glsl/Upscale/Anime4K_3DGraphics_AA_Upscale_x2_US.glsl", Hook: true},
}

// FindPredefined looks up a predefined pipeline source by its catalog name.
func FindPredefined(name string) (PipelineSource, bool) {
	for _, p := range PredefinedAux {
		if p.Name == name {
			return p, true
		}
	}
	for _, p := range PredefinedCNN {
		if p.Name == name {
			return p, true
		}
	}
	return PipelineSource{}, false
}

// PerformancePreset controls the computational cost of upscaling by
// selecting CNN model sizes.
type PerformancePreset uint8

const (
	// PerformanceLight is the fastest processing with the smallest models.
	PerformanceLight PerformancePreset = iota
	// PerformanceMedium balances performance and quality.
	PerformanceMedium
	// PerformanceHigh trades some performance for higher quality.
	PerformanceHigh
	// PerformanceUltra is very high quality at significant cost.
	PerformanceUltra
	// PerformanceExtreme is maximum quality at the highest cost.
	PerformanceExtreme
)

// String returns the human-readable preset name.
func (p PerformancePreset) String() string {
	switch p {
	case PerformanceLight:
		return "Light"
	case PerformanceMedium:
		return "Medium"
	case PerformanceHigh:
		return "High"
	case PerformanceUltra:
		return "Ultra"
	case PerformanceExtreme:
		return "Extreme"
	default:
		return "Unknown"
	}
}

func (p PerformancePreset) initialRestore() string {
	return [...]string{"RESTORE_CNN_S", "RESTORE_CNN_M", "RESTORE_CNN_L", "RESTORE_CNN_VL", "RESTORE_CNN_UL"}[p]
}

func (p PerformancePreset) initialRestoreSoft() string {
	return [...]string{"RESTORE_SOFT_CNN_S", "RESTORE_SOFT_CNN_M", "RESTORE_SOFT_CNN_L", "RESTORE_SOFT_CNN_VL", "RESTORE_SOFT_CNN_UL"}[p]
}

func (p PerformancePreset) initialUpscaleDenoise2x() string {
	return [...]string{"UPSCALE_DENOISE_CNN_X2_S", "UPSCALE_DENOISE_CNN_X2_M", "UPSCALE_DENOISE_CNN_X2_L", "UPSCALE_DENOISE_CNN_X2_VL", "UPSCALE_DENOISE_CNN_X2_UL"}[p]
}

// Subsequent passes use smaller models than the initial pass.
func (p PerformancePreset) subsequentRestore() string {
	return [...]string{"RESTORE_CNN_S", "RESTORE_CNN_S", "RESTORE_CNN_M", "RESTORE_CNN_L", "RESTORE_CNN_L"}[p]
}

func (p PerformancePreset) subsequentRestoreSoft() string {
	return [...]string{"RESTORE_SOFT_CNN_S", "RESTORE_SOFT_CNN_S", "RESTORE_SOFT_CNN_M", "RESTORE_SOFT_CNN_L", "RESTORE_SOFT_CNN_L"}[p]
}

func (p PerformancePreset) initialUpscale2x() string {
	return [...]string{"UPSCALE_CNN_X2_S", "UPSCALE_CNN_X2_M", "UPSCALE_CNN_X2_L", "UPSCALE_CNN_X2_VL", "UPSCALE_CNN_X2_UL"}[p]
}

func (p PerformancePreset) subsequentUpscale2x() string {
	return [...]string{"UPSCALE_CNN_X2_S", "UPSCALE_CNN_X2_S", "UPSCALE_CNN_X2_M", "UPSCALE_CNN_X2_L", "UPSCALE_CNN_X2_L"}[p]
}

// Preset selects an Anime4K processing mode: which restore, upscale, and
// denoise pipelines run, and in what order.
type Preset uint8

const (
	// PresetOff applies no processing.
	PresetOff Preset = iota
	// PresetModeA is standard restore then upscale, good for most anime.
	PresetModeA
	// PresetModeAA is Mode A with an additional restore pass.
	PresetModeAA
	// PresetModeB is soft restore then upscale, gentler processing.
	PresetModeB
	// PresetModeBB is Mode B with an additional soft restore pass.
	PresetModeBB
	// PresetModeC combines upscaling and denoising, efficient for noisy
	// content.
	PresetModeC
	// PresetModeCA is Mode C followed by a restore pass.
	PresetModeCA
)

// String returns the human-readable preset name.
func (p Preset) String() string {
	switch p {
	case PresetOff:
		return "OFF"
	case PresetModeA:
		return "Mode A"
	case PresetModeAA:
		return "Mode AA"
	case PresetModeB:
		return "Mode B"
	case PresetModeBB:
		return "Mode BB"
	case PresetModeC:
		return "Mode C"
	case PresetModeCA:
		return "Mode CA"
	default:
		return "Unknown"
	}
}

// Sequence returns the ordered predefined pipeline names implementing this
// preset at the given performance level. Additional 2x upscale stages are
// appended until targetScale is reached.
func (p Preset) Sequence(perf PerformancePreset, targetScale float64) []string {
	var base []string
	switch p {
	case PresetOff:
		return nil
	case PresetModeA:
		base = []string{"CLAMP_HIGHLIGHTS", perf.initialRestore(), perf.initialUpscale2x()}
	case PresetModeB:
		base = []string{"CLAMP_HIGHLIGHTS", perf.initialRestoreSoft(), perf.initialUpscale2x()}
	case PresetModeC:
		base = []string{"CLAMP_HIGHLIGHTS", perf.initialUpscaleDenoise2x()}
	case PresetModeAA:
		base = []string{"CLAMP_HIGHLIGHTS", perf.initialRestore(), perf.initialUpscale2x(), perf.subsequentRestore()}
	case PresetModeBB:
		base = []string{"CLAMP_HIGHLIGHTS", perf.initialRestoreSoft(), perf.initialUpscale2x(), perf.subsequentRestoreSoft()}
	case PresetModeCA:
		base = []string{"CLAMP_HIGHLIGHTS", perf.initialUpscaleDenoise2x(), perf.subsequentRestore()}
	}

	for scale := 2.0; scale < targetScale; scale *= 2 {
		base = append(base, perf.subsequentUpscale2x())
	}
	return base
}
