/*
go-pictogram renders the body pose detected by a landmark model such as
MediaPipe BlazePose as a flat pictogram figure, in the style of the Olympic
sport pictograms.

Each frame of 33 pose landmarks is reduced to a head circle enclosing the face
plus tapered limb segments for the arms and legs, which are painted farthest
from the camera first so nearer limbs overlap those behind them.  Limbs whose
joints fall below a visibility threshold are skipped.

Rendering is done onto a Canvas, either an OpenCV Mat via gocv or a pure Go
image.RGBA.  The landmark subpackage converts normalized model output into
pixel space frames.

See example code and usage in the example subdirectory.
*/
package pictogram
