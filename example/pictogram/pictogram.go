/*
Example code showing how to render pose landmarks as a pictogram.

Landmarks are read from a JSON file holding a list of frames, each frame being
the list of 33 normalized landmarks output by a MediaPipe style pose model.
An empty list marks a frame with no pose detected.

	[
	  [{"x":0.51,"y":0.18,"z":-0.31,"visibility":0.99}, ...],
	  []
	]
*/
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/swdee/go-pictogram"
	"github.com/swdee/go-pictogram/landmark"
	"github.com/swdee/go-pictogram/render"
	"gocv.io/x/gocv"
)

// fpsWindow is the number of recent frames averaged for the FPS readout
const fpsWindow = 10

// Demo holds the state for rendering a sequence of landmark frames
type Demo struct {
	frames [][]landmark.Normalized
	width  int
	height int
	style  pictogram.Style
	mirror bool
	// letterbox maps landmarks normalized to a letterboxed model input back
	// to the source image, nil if the model input was not letterboxed
	letterbox *landmark.Letterbox
	// bg is the optional camera image the raw landmarks are overlaid on
	bg     *gocv.Mat
	outDir string
	pool   *render.Pool
	fps    *fpsMeter
	log    *logrus.Logger
}

// Result of rendering a single frame
type Result struct {
	FrameNum  int
	Pictogram *gocv.Mat
	Overlay   *gocv.Mat
	FPS       float64
}

func main() {

	// read in cli flags
	inFile := flag.String("i", "../data/landmarks.json", "JSON file of normalized pose landmarks per frame")
	outDir := flag.String("o", "", "Directory to write rendered frames to")
	width := flag.Int("w", 640, "Width of rendered image")
	height := flag.Int("h", 360, "Height of rendered image")
	bgFile := flag.String("bg", "", "Camera image to overlay raw landmarks on, sets the render size")
	reverse := flag.Bool("rev", false, "Reverse colors, light figure on dark background")
	simple := flag.Bool("simple", false, "Draw single shoulder to pelvis sticks instead of jointed limbs")
	visTh := flag.Float64("vis", pictogram.DefaultVisibilityThreshold, "Visibility threshold a limb's joints must exceed to be drawn")
	mirror := flag.Bool("mirror", false, "Flip landmarks horizontally as for a mirrored camera display")
	show := flag.Bool("show", false, "Show rendered frames in a window")
	modelW := flag.Int("mw", 0, "Width of letterboxed model input the landmarks are normalized to, 0 if not letterboxed")
	modelH := flag.Int("mh", 0, "Height of letterboxed model input the landmarks are normalized to")
	workers := flag.Int("s", 3, "Number of frames to render in parallel")
	logLevel := flag.String("loglevel", "info", "Log level [debug|info|warn|error]")

	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(*logLevel)

	if err != nil {
		log.Fatalf("Invalid log level %q: %v", *logLevel, err)
	}

	log.SetLevel(level)

	if *outDir == "" && !*show {
		log.Fatal("Nothing to do, set an output directory with -o or use -show")
	}

	frames, err := readFrames(*inFile)

	if err != nil {
		log.Fatalf("Error reading landmarks: %v", err)
	}

	log.WithField("frames", len(frames)).Info("Loaded landmark frames")

	style := pictogram.DefaultStyle()

	if *reverse {
		style = pictogram.ReverseStyle()
	}

	style.VisibilityThreshold = *visTh

	if *simple {
		style.Mode = pictogram.ModeSimple
	}

	d := &Demo{
		frames: frames,
		width:  *width,
		height: *height,
		style:  style,
		mirror: *mirror,
		outDir: *outDir,
		fps:    newFPSMeter(fpsWindow),
		log:    log,
	}

	if *bgFile != "" {
		bg := gocv.IMRead(*bgFile, gocv.IMReadColor)

		if bg.Empty() {
			log.Fatalf("Error reading background image from: %s", *bgFile)
		}

		defer bg.Close()

		if *mirror {
			gocv.Flip(bg, &bg, 1)
		}

		d.bg = &bg
		d.width = bg.Cols()
		d.height = bg.Rows()
	}

	if *modelW > 0 && *modelH > 0 {
		d.letterbox = landmark.NewLetterbox(d.width, d.height, *modelW, *modelH)

		log.WithFields(logrus.Fields{
			"scale": d.letterbox.ScaleFactor(),
			"xPad":  d.letterbox.XPad(),
			"yPad":  d.letterbox.YPad(),
		}).Info("Using letterboxed landmarks")
	}

	if d.outDir != "" {
		if err := os.MkdirAll(d.outDir, 0755); err != nil {
			log.Fatalf("Error creating output directory: %v", err)
		}
	}

	// windows must be driven from the main goroutine so frames are rendered
	// one at a time
	if *show {
		*workers = 1
	}

	d.pool = render.NewPool(*workers, d.width, d.height)
	defer d.pool.Close()

	if *show {
		d.Show()
	} else {
		d.Run()
	}

	log.WithField("fps", fmt.Sprintf("%.2f", d.fps.Average())).Info("Done")
}

// readFrames loads the landmark frames from a JSON file
func readFrames(file string) ([][]landmark.Normalized, error) {

	data, err := os.ReadFile(file)

	if err != nil {
		return nil, err
	}

	var frames [][]landmark.Normalized

	if err := json.Unmarshal(data, &frames); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}

	return frames, nil
}

// Run renders all frames in parallel, one per Mat in the pool, and writes
// them to the output directory
func (d *Demo) Run() {

	var wg sync.WaitGroup

	for i := range d.frames {
		// blocks until a Mat is free
		mat := d.pool.Get()

		wg.Add(1)

		go func(frameNum int, mat *gocv.Mat) {
			defer wg.Done()
			defer d.pool.Return(mat)

			res, err := d.ProcessFrame(frameNum, mat)

			if err != nil {
				d.log.WithField("frame", frameNum).Errorf("Error rendering frame: %v", err)
				return
			}

			d.save(res)
		}(i, mat)
	}

	wg.Wait()
}

// Show renders the frames in order displaying them in a window until the
// frames run out or ESC is pressed
func (d *Demo) Show() {

	window := gocv.NewWindow("Pictogram")
	defer window.Close()

	var overlayWin *gocv.Window

	if d.bg != nil {
		overlayWin = gocv.NewWindow("Landmarks")
		defer overlayWin.Close()
	}

	for i := range d.frames {
		mat := d.pool.Get()

		res, err := d.ProcessFrame(i, mat)

		if err != nil {
			d.log.WithField("frame", i).Errorf("Error rendering frame: %v", err)
			d.pool.Return(mat)
			continue
		}

		window.IMShow(*res.Pictogram)

		if overlayWin != nil {
			overlayWin.IMShow(*res.Overlay)
		}

		d.save(res)
		d.pool.Return(mat)

		// ESC
		if window.WaitKey(1) == 27 {
			break
		}
	}
}

// ProcessFrame renders the pictogram for the frame onto the given Mat, plus
// the landmark overlay if a background image was given
func (d *Demo) ProcessFrame(frameNum int, mat *gocv.Mat) (*Result, error) {

	start := time.Now()

	samples := d.frames[frameNum]

	if d.letterbox != nil {
		samples = d.letterbox.NormalizeAll(samples)
	}

	frame := landmark.FromNormalized(samples, d.width, d.height)

	if d.mirror {
		frame = frame.Mirror(d.width)
	}

	flog := d.log.WithFields(logrus.Fields{
		"frame":     frameNum,
		"landmarks": len(frame),
	})

	if !frame.Empty() && d.log.IsLevelEnabled(logrus.DebugLevel) {
		d.logDiagnostics(flog, frame)
	}

	err := pictogram.Render(render.NewMatCanvas(mat), frame, d.style)

	if err != nil {
		return nil, err
	}

	res := &Result{
		FrameNum:  frameNum,
		Pictogram: mat,
	}

	if d.bg != nil {
		overlay := d.bg.Clone()
		render.Overlay(&overlay, frame, render.DefaultOverlayStyle())
		res.Overlay = &overlay
	}

	res.FPS = d.fps.Add(time.Since(start))

	fpsText := fmt.Sprintf("FPS: %.1f", res.FPS)
	render.Text(res.Pictogram, fpsText, image.Pt(10, 30), render.StatusFont(d.style.Color))

	if res.Overlay != nil {
		render.Text(res.Overlay, fpsText, image.Pt(10, 30), render.StatusFont(render.Green))
	}

	flog.WithField("fps", fmt.Sprintf("%.2f", res.FPS)).Debug("Rendered frame")

	return res, nil
}

// logDiagnostics logs the distance and depth agreement of the left and right
// landmark pairs
func (d *Demo) logDiagnostics(flog *logrus.Entry, frame landmark.Frame) {

	reports, err := landmark.PairDiagnostics(frame)

	if err != nil {
		flog.Debugf("Pair diagnostics unavailable: %v", err)
		return
	}

	for _, r := range reports {
		flog.WithFields(logrus.Fields{
			"pair":       fmt.Sprintf("%s/%s", landmark.Label(r.A), landmark.Label(r.B)),
			"distance":   r.Distance,
			"depthA":     r.DepthA,
			"depthB":     r.DepthB,
			"depthMatch": r.DepthMatch,
		}).Debug("Landmark pair")
	}
}

// save writes the rendered images of the result to the output directory and
// frees the overlay
func (d *Demo) save(res *Result) {

	if res.Overlay != nil {
		defer res.Overlay.Close()
	}

	if d.outDir == "" {
		return
	}

	file := filepath.Join(d.outDir, fmt.Sprintf("pictogram-%05d.png", res.FrameNum))

	if !gocv.IMWrite(file, *res.Pictogram) {
		d.log.WithField("file", file).Error("Error writing pictogram image")
	}

	if res.Overlay == nil {
		return
	}

	file = filepath.Join(d.outDir, fmt.Sprintf("landmarks-%05d.png", res.FrameNum))

	if !gocv.IMWrite(file, *res.Overlay) {
		d.log.WithField("file", file).Error("Error writing landmark overlay image")
	}
}

// fpsMeter calculates frames per second as a rolling average of the most
// recent frame times
type fpsMeter struct {
	sync.Mutex
	times []time.Duration
	next  int
	total time.Duration
	count int
	all   time.Duration
}

func newFPSMeter(window int) *fpsMeter {
	return &fpsMeter{
		times: make([]time.Duration, window),
	}
}

// Add records the time taken for a frame and returns the current rolling FPS
func (f *fpsMeter) Add(d time.Duration) float64 {
	f.Lock()
	defer f.Unlock()

	f.total -= f.times[f.next]
	f.times[f.next] = d
	f.total += d
	f.next = (f.next + 1) % len(f.times)

	f.count++
	f.all += d

	n := f.count

	if n > len(f.times) {
		n = len(f.times)
	}

	if f.total <= 0 {
		return 0
	}

	return float64(n) / f.total.Seconds()
}

// Average returns the FPS over every frame recorded
func (f *fpsMeter) Average() float64 {
	f.Lock()
	defer f.Unlock()

	if f.all <= 0 {
		return 0
	}

	return float64(f.count) / f.all.Seconds()
}
