package httpapi

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"housepriced/pkg/types"
)

var errInvalidJSON = errors.New("invalid JSON body")

// handlePredict godoc
// @Summary      Predict house price
// @Description  Runs linear regression, SVR and logistic regression on the house features. Values may be numbers, numeric strings or booleans.
// @Tags         predict
// @Accept       json
// @Produce      json
// @Param        request  body      types.PredictRequest  true  "House features"
// @Success      200      {object}  types.PredictResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      503      {object}  types.ErrorResponse
// @Router       /predict [post]
func handlePredict(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lvl := requestLogLevel(r)
		fail := func(status int, err error) {
			if status == http.StatusBadRequest {
				incInputError("/predict")
			}
			logOutcome(r, lvl, status, start, err)
			writeJSONError(w, status, err.Error())
		}

		if mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mt != "application/json" {
			fail(http.StatusBadRequest, errors.New("Content-Type must be application/json"))
			return
		}
		// Limit body size (configurable, default 1MiB)
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		var body map[string]any
		if err := dec.Decode(&body); err != nil {
			// oversize bodies land here too; same 400 without size details
			fail(http.StatusBadRequest, errInvalidJSON)
			return
		}
		// exactly one JSON value; trailing data is malformed
		var extra any
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			fail(http.StatusBadRequest, errInvalidJSON)
			return
		}
		f, err := featuresFromJSON(body)
		if err != nil {
			fail(http.StatusBadRequest, err)
			return
		}

		// Join server base context with request context so shutdown cancels work too.
		ctx, cancel := predictContext(r)
		defer cancel()
		p, err := svc.Predict(ctx, f, types.SourceAPI)
		if err != nil {
			// Client disconnected: nobody to answer.
			if clientGone(r) {
				return
			}
			fail(failureStatus(err))
			return
		}
		logOutcome(r, lvl, http.StatusOK, start, nil)
		writeJSON(w, http.StatusOK, p.Response())
	}
}
