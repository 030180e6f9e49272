package cli

import (
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jmo-jr/bereia"
)

var serveAddr string

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the conjugation engine as a JSON REST API",
		Long: "Serve the conjugation engine over HTTP:\n\n" +
			"  GET /api/conjugate?phrase=<gloss>&tag=<desgram>\n" +
			"  GET /api/morphology?tag=<desgram>\n" +
			"  GET /api/transliterate?word=<greek>",
		Run: runServe,
	}
	cmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	RootCmd.AddCommand(cmd)
}

// ---- JSON response types ------------------------------------------------

type morphologyJSON struct {
	Tense  string `json:"tense,omitempty"`
	Mood   string `json:"mood,omitempty"`
	Voice  string `json:"voice,omitempty"`
	Person int    `json:"person,omitempty"`
	Number string `json:"number,omitempty"`
	Case   string `json:"case,omitempty"`
	Gender string `json:"gender,omitempty"`
	Extra  string `json:"extra,omitempty"`
}

type conjugateResponse struct {
	Phrase     string         `json:"phrase"`
	Morphology morphologyJSON `json:"morphology"`
	Subject    string         `json:"subject,omitempty"`
	Clauses    []string       `json:"clauses"`
	Result     string         `json:"result"`
}

type morphologyResponse struct {
	Tag        string         `json:"tag"`
	Morphology morphologyJSON `json:"morphology"`
}

type transliterateResponse struct {
	Word    string `json:"word"`
	Latin   string `json:"latin"`
	Capital bool   `json:"capital"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toMorphologyJSON(m bereia.Morphology) morphologyJSON {
	return morphologyJSON{
		Tense:  m.Tense,
		Mood:   m.Mood,
		Voice:  m.Voice,
		Person: m.Person,
		Number: m.Number,
		Case:   m.Case,
		Gender: m.Gender,
		Extra:  m.Extra,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("encode error")
		http.Error(w, "encode error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleConjugate(conj *bereia.Conjugator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		phrase := r.URL.Query().Get("phrase")
		if phrase == "" {
			writeError(w, http.StatusBadRequest, "missing 'phrase' query parameter")
			return
		}
		tag := r.URL.Query().Get("tag")

		morph := conj.Parser().Parse(tag)
		phrases := bereia.SplitPhrases(phrase)
		if len(phrases) == 0 {
			phrases = []string{phrase}
		}
		clauses := conj.ConjugateEntry(phrases, morph)
		subject, _ := conj.ResolveSubject(morph)

		writeJSON(w, http.StatusOK, conjugateResponse{
			Phrase:     phrase,
			Morphology: toMorphologyJSON(morph),
			Subject:    subject,
			Clauses:    clauses,
			Result:     strings.Join(clauses, ", "),
		})
	}
}

func handleMorphology(conj *bereia.Conjugator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		tag := r.URL.Query().Get("tag")
		if tag == "" {
			writeError(w, http.StatusBadRequest, "missing 'tag' query parameter")
			return
		}
		writeJSON(w, http.StatusOK, morphologyResponse{
			Tag:        tag,
			Morphology: toMorphologyJSON(conj.Parser().Parse(tag)),
		})
	}
}

func handleTransliterate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		latin := bereia.Transliterate(word)
		writeJSON(w, http.StatusOK, transliterateResponse{
			Word:    word,
			Latin:   latin,
			Capital: latin != strings.ToLower(latin),
		})
	}
}

// ---- command ------------------------------------------------------------

func runServe(cmd *cobra.Command, args []string) {
	conj := bereia.New()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/conjugate", handleConjugate(conj))
	mux.HandleFunc("/api/morphology", handleMorphology(conj))
	mux.HandleFunc("/api/transliterate", handleTransliterate())

	handler := cors.Default().Handler(mux)

	log.Info().Str("addr", serveAddr).Msg("listening")
	if err := http.ListenAndServe(serveAddr, handler); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
