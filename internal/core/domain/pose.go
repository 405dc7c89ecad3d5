package domain

import (
	"errors"
	"math"
)

var ErrUnknownPoseExercise = errors.New("unknown exercise for form analysis")

// Landmark names used by the form analyzer. The pose-estimation model
// producing them is an external collaborator; only the scoring contract
// lives here.
const (
	LandmarkLeftShoulder = "left_shoulder"
	LandmarkLeftElbow    = "left_elbow"
	LandmarkLeftWrist    = "left_wrist"
	LandmarkLeftHip      = "left_hip"
	LandmarkLeftKnee     = "left_knee"
	LandmarkLeftAnkle    = "left_ankle"
)

// minLandmarkConfidence gates which detections count at all.
const minLandmarkConfidence = 0.3

// PoseExercise selects the rule set applied to a frame.
type PoseExercise string

const (
	PoseSquat  PoseExercise = "squat"
	PosePushup PoseExercise = "pushup"
	PosePlank  PoseExercise = "plank"
	PoseLunge  PoseExercise = "lunge"
)

// Landmark is one named body keypoint with pixel position and a model
// confidence in [0,1].
type Landmark struct {
	Name       string  `json:"name"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Confidence float64 `json:"score"`
}

// FormFeedback is one human-readable observation about the frame.
type FormFeedback struct {
	Level   string `json:"type"` // success, warning, info
	Message string `json:"message"`
}

// FormResult is the outcome of scoring a single frame.
type FormResult struct {
	Score    int            `json:"score"`
	Feedback []FormFeedback `json:"feedback"`
}

// ScoreForm applies the rule-based deductions for the exercise to one
// frame of landmarks. The score starts at 100 and is clamped to
// [0,100]; missing or low-confidence landmarks skip their rules rather
// than penalizing.
func ScoreForm(exercise PoseExercise, frame []Landmark) (FormResult, error) {
	byName := map[string]Landmark{}
	for _, lm := range frame {
		if lm.Confidence > minLandmarkConfidence {
			byName[lm.Name] = lm
		}
	}
	get := func(names ...string) ([]Landmark, bool) {
		out := make([]Landmark, 0, len(names))
		for _, n := range names {
			lm, ok := byName[n]
			if !ok {
				return nil, false
			}
			out = append(out, lm)
		}
		return out, true
	}

	score := 100
	var feedback []FormFeedback
	note := func(level, msg string) { feedback = append(feedback, FormFeedback{Level: level, Message: msg}) }

	switch exercise {
	case PoseSquat:
		if pts, ok := get(LandmarkLeftHip, LandmarkLeftKnee, LandmarkLeftAnkle); ok {
			kneeAngle := angle(pts[0], pts[1], pts[2])
			switch {
			case kneeAngle < 90:
				note("success", "Great depth! Below parallel")
			case kneeAngle < 120:
				note("warning", "Go deeper for full range")
				score -= 15
			default:
				note("info", "Bend your knees more")
				score -= 25
			}
			if pts[1].X > pts[2].X+50 {
				note("warning", "Keep knees behind toes")
				score -= 10
			}
		}
		if pts, ok := get(LandmarkLeftShoulder, LandmarkLeftHip); ok {
			if math.Abs(pts[0].X-pts[1].X) > 80 {
				note("warning", "Keep your back straighter")
				score -= 15
			} else {
				note("success", "Good back position")
			}
		}
	case PosePushup:
		if pts, ok := get(LandmarkLeftShoulder, LandmarkLeftElbow, LandmarkLeftWrist); ok {
			elbowAngle := angle(pts[0], pts[1], pts[2])
			switch {
			case elbowAngle < 100:
				note("success", "Great depth!")
			case elbowAngle < 140:
				note("warning", "Go lower")
				score -= 15
			default:
				note("info", "Bend elbows more")
			}
		}
		if pts, ok := get(LandmarkLeftShoulder, LandmarkLeftHip, LandmarkLeftAnkle); ok {
			if angle(pts[0], pts[1], pts[2]) < 160 {
				note("warning", "Keep hips level - don't sag")
				score -= 20
			} else {
				note("success", "Body alignment good")
			}
		}
	case PosePlank:
		if pts, ok := get(LandmarkLeftShoulder, LandmarkLeftHip, LandmarkLeftAnkle); ok {
			bodyAngle := angle(pts[0], pts[1], pts[2])
			switch {
			case bodyAngle > 165 && bodyAngle < 195:
				note("success", "Perfect plank position!")
			case bodyAngle <= 165:
				note("warning", "Hips too low - lift them up")
				score -= 20
			default:
				note("warning", "Hips too high - lower them")
				score -= 15
			}
		}
		if pts, ok := get(LandmarkLeftShoulder, LandmarkLeftElbow); ok {
			if math.Abs(pts[0].X-pts[1].X) < 30 {
				note("success", "Shoulders over elbows")
			} else {
				note("info", "Align shoulders over elbows")
				score -= 10
			}
		}
	case PoseLunge:
		if pts, ok := get(LandmarkLeftHip, LandmarkLeftKnee, LandmarkLeftAnkle); ok {
			kneeAngle := angle(pts[0], pts[1], pts[2])
			switch {
			case kneeAngle >= 85 && kneeAngle <= 95:
				note("success", "Perfect 90° knee angle")
			case kneeAngle < 85:
				note("warning", "Knee too bent")
				score -= 10
			case kneeAngle > 120:
				note("info", "Go deeper into lunge")
			}
		}
		if pts, ok := get(LandmarkLeftShoulder, LandmarkLeftHip); ok {
			if math.Abs(pts[0].X-pts[1].X) < 30 {
				note("success", "Torso upright")
			} else {
				note("warning", "Keep torso more upright")
				score -= 15
			}
		}
	default:
		return FormResult{}, ErrUnknownPoseExercise
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return FormResult{Score: score, Feedback: feedback}, nil
}

// angle returns the angle at vertex b formed by a-b-c, in degrees.
func angle(a, b, c Landmark) float64 {
	rad := math.Atan2(c.Y-b.Y, c.X-b.X) - math.Atan2(a.Y-b.Y, a.X-b.X)
	deg := math.Abs(rad * 180 / math.Pi)
	if deg > 180 {
		deg = 360 - deg
	}
	return deg
}
