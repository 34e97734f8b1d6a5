package httpapi

import (
	"bytes"
	"embed"
	"html/template"
	"mime"
	"net/http"
	"time"

	"housepriced/pkg/types"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// formInput echoes the submitted values back into the form.
type formInput struct {
	Size, Bedrooms, Age, Location string
}

type pageData struct {
	Input      formInput
	Error      string
	Comparison []types.ComparisonRow
	BestModel  string
}

func renderIndex(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		zlog.Error().Err(err).Msg("render index")
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// parseForm reads urlencoded and multipart bodies into r.PostForm.
func parseForm(r *http.Request) error {
	if mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mt == "multipart/form-data" {
		return r.ParseMultipartForm(maxBodyBytes)
	}
	return r.ParseForm()
}

// handleIndex serves the empty form.
func handleIndex(w http.ResponseWriter, r *http.Request) {
	renderIndex(w, http.StatusOK, pageData{})
}

// handleIndexSubmit predicts from the posted form and renders the model
// comparison. Bad input re-renders the form with the error.
func handleIndexSubmit(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lvl := requestLogLevel(r)
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := parseForm(r); err != nil {
			incInputError("/")
			logOutcome(r, lvl, http.StatusBadRequest, start, err)
			renderIndex(w, http.StatusBadRequest, pageData{Error: "invalid form submission"})
			return
		}
		in := formInput{
			Size:     r.PostForm.Get("size"),
			Bedrooms: r.PostForm.Get("bedrooms"),
			Age:      r.PostForm.Get("age"),
			Location: r.PostForm.Get("location"),
		}
		f, err := featuresFromForm(r.PostForm.Get)
		if err != nil {
			incInputError("/")
			logOutcome(r, lvl, http.StatusBadRequest, start, err)
			renderIndex(w, http.StatusBadRequest, pageData{Input: in, Error: err.Error()})
			return
		}

		ctx, cancel := predictContext(r)
		defer cancel()
		p, err := svc.Predict(ctx, f, types.SourceForm)
		if err != nil {
			if clientGone(r) {
				return
			}
			status, err := failureStatus(err)
			logOutcome(r, lvl, status, start, err)
			renderIndex(w, status, pageData{Input: in, Error: err.Error()})
			return
		}
		logOutcome(r, lvl, http.StatusOK, start, nil)
		renderIndex(w, http.StatusOK, pageData{
			Input:      in,
			Comparison: p.Comparison(),
			BestModel:  p.Best.Name,
		})
	}
}
