package landmark

// Letterbox describes how a source image was scaled and padded to fit the
// pose model input tensor whilst maintaining image aspect.  It is used to map
// landmark coordinates on the model input back to the source image.
type Letterbox struct {
	// srcWidth is the width of the source image
	srcWidth int
	// srcHeight is the height of the source image
	srcHeight int
	// modelWidth is the width of the model input tensor
	modelWidth int
	// modelHeight is the height of the model input tensor
	modelHeight int
	// letterbox parameters used in scaling
	xPad  int
	yPad  int
	scale float64
}

// NewLetterbox returns the letterbox parameters for scaling a source image
// to the model input dimensions
func NewLetterbox(srcWidth, srcHeight, modelWidth, modelHeight int) *Letterbox {
	l := &Letterbox{
		srcWidth:    srcWidth,
		srcHeight:   srcHeight,
		modelWidth:  modelWidth,
		modelHeight: modelHeight,
	}

	l.preCalc()

	return l
}

// preCalc the scaling factor and padding between source and model dimensions
func (l *Letterbox) preCalc() {

	resizeW := l.modelWidth
	resizeH := l.modelHeight

	scaleW := float64(l.modelWidth) / float64(l.srcWidth)
	scaleH := float64(l.modelHeight) / float64(l.srcHeight)
	l.scale = scaleH

	if scaleW < scaleH {
		l.scale = scaleW
		resizeH = int(float64(l.srcHeight) * l.scale)
	} else {
		resizeW = int(float64(l.srcWidth) * l.scale)
	}

	l.yPad = (l.modelHeight - resizeH) / 2
	l.xPad = (l.modelWidth - resizeW) / 2
}

// Normalize converts a landmark sample whose X and Y are normalized to the
// model input into one normalized to the source image
func (l *Letterbox) Normalize(s Normalized) Normalized {

	mx := s.X * float64(l.modelWidth)
	my := s.Y * float64(l.modelHeight)

	s.X = (mx - float64(l.xPad)) / l.scale / float64(l.srcWidth)
	s.Y = (my - float64(l.yPad)) / l.scale / float64(l.srcHeight)

	return s
}

// NormalizeAll applies Normalize to every sample
func (l *Letterbox) NormalizeAll(samples []Normalized) []Normalized {

	out := make([]Normalized, len(samples))

	for i, s := range samples {
		out[i] = l.Normalize(s)
	}

	return out
}

// ScaleFactor returns the scale factor used in letterbox resize
func (l *Letterbox) ScaleFactor() float64 {
	return l.scale
}

// XPad returns the x padding used in letterbox resize
func (l *Letterbox) XPad() int {
	return l.xPad
}

// YPad returns the y padding used in letterbox resize
func (l *Letterbox) YPad() int {
	return l.yPad
}
