package circuit

// MeasurementKind identifies what a measurement returns.
type MeasurementKind int

// Supported measurement kinds. StateVector, VnEntropy and MutualInfo are
// part of the data model so callers can express them; the gradient
// transform rejects them.
const (
	Expectation MeasurementKind = iota
	Probability
	Variance
	StateVector
	VnEntropy
	MutualInfo
)

// String returns the measurement kind's name.
func (k MeasurementKind) String() string {
	switch k {
	case Expectation:
		return "expval"
	case Probability:
		return "probs"
	case Variance:
		return "var"
	case StateVector:
		return "state"
	case VnEntropy:
		return "vn_entropy"
	case MutualInfo:
		return "mutual_info"
	default:
		return "unknown"
	}
}

// Measurement is a single measurement specification: a kind plus either an
// observable or, for computational-basis measurements, an explicit wire list.
type Measurement struct {
	kind  MeasurementKind
	obs   *Observable
	wires []int
}

// Expval returns an expectation-value measurement of the observable.
func Expval(obs Observable) Measurement {
	return Measurement{kind: Expectation, obs: &obs}
}

// Var returns a variance measurement of the observable.
func Var(obs Observable) Measurement {
	return Measurement{kind: Variance, obs: &obs}
}

// Probs returns a computational-basis probability measurement over the
// given wires, first wire most significant.
func Probs(wires ...int) Measurement {
	w := make([]int, len(wires))
	copy(w, wires)
	return Measurement{kind: Probability, wires: w}
}

// ProbsObs returns a probability measurement in the eigenbasis of the
// observable, outcome index ordered by the observable's wires.
func ProbsObs(obs Observable) Measurement {
	return Measurement{kind: Probability, obs: &obs}
}

// State returns a raw statevector measurement.
func State() Measurement {
	return Measurement{kind: StateVector}
}

// Entropy returns a Von Neumann entropy measurement of the given subsystem.
func Entropy(wires ...int) Measurement {
	w := make([]int, len(wires))
	copy(w, wires)
	return Measurement{kind: VnEntropy, wires: w}
}

// MutualInfoBetween returns a mutual-information measurement between two
// subsystems.
func MutualInfoBetween(wiresA, wiresB []int) Measurement {
	w := make([]int, 0, len(wiresA)+len(wiresB))
	w = append(w, wiresA...)
	w = append(w, wiresB...)
	return Measurement{kind: MutualInfo, wires: w}
}

// Kind returns the measurement's kind.
func (m Measurement) Kind() MeasurementKind { return m.kind }

// Observable returns the measurement's observable, if any.
func (m Measurement) Observable() (Observable, bool) {
	if m.obs == nil {
		return Observable{}, false
	}
	return *m.obs, true
}

// Wires returns the wires the measurement reports on: the observable's
// wires when one is set, the explicit wire list otherwise.
func (m Measurement) Wires() []int {
	if m.obs != nil {
		return m.obs.Wires()
	}
	out := make([]int, len(m.wires))
	copy(out, m.wires)
	return out
}
