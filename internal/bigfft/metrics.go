package bigfft

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Algorithm labels reported on the multiplication counter.
const (
	algorithmSchoolbook = "schoolbook"
	algorithmToomCook3  = "toomcook3"
	algorithmFFT        = "fft"
	algorithmFFTMixed   = "fft3n"
)

// multiplicationsTotal counts dispatched multiplications by algorithm.
// Registration uses the default registry so embedding applications can
// expose it through their own handlers.
var multiplicationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "decparse_multiplications_total",
		Help: "The total number of big-integer multiplications by algorithm",
	},
	[]string{"algorithm"},
)
