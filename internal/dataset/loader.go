package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/reelrank/reelrank/internal/domain"
)

// ErrNotFound indicates a data file does not exist at the given path.
var ErrNotFound = errors.New("dataset: not found")

// Loader parses the pipe-delimited movie and rating files. Malformed rows
// are skipped with a warning rather than failing the whole load.
type Loader struct {
	logger *log.Logger
}

// NewLoader constructs a Loader writing warnings to the given logger.
func NewLoader(logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{logger: logger}
}

// LoadCatalog parses a movies file (movie_genre|movie_id|movie_name, header
// row included) into a Catalog. On duplicate names the last row wins.
func (l *Loader) LoadCatalog(path string) (domain.Catalog, error) {
	f, err := l.open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	catalog := domain.Catalog{}
	reader := newReader(f)
	for line := 1; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			l.logger.Printf("movies: skipping unreadable line %d: %v", line, err)
			continue
		}
		if line == 1 {
			// header
			continue
		}
		if len(row) < 3 {
			l.logger.Printf("movies: skipping malformed line %d: %q", line, row)
			continue
		}
		genre := domain.Normalize(row[0])
		id := strings.TrimSpace(row[1])
		name := domain.Normalize(row[2])
		if name == "" {
			l.logger.Printf("movies: empty movie name at line %d", line)
			continue
		}
		catalog[name] = domain.MovieRecord{Name: name, ID: id, Genre: genre}
	}
	l.logger.Printf("dataset: loaded %d movies from %s", len(catalog), path)
	return catalog, nil
}

// LoadRatings parses a ratings file (movie_name|rating|user_id, header row
// included) into a RatingStore. Non-numeric ratings and ratings outside
// [0, 5] are skipped with a warning.
func (l *Loader) LoadRatings(path string) (domain.RatingStore, error) {
	f, err := l.open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	store := domain.RatingStore{}
	total := 0
	reader := newReader(f)
	for line := 1; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			l.logger.Printf("ratings: skipping unreadable line %d: %v", line, err)
			continue
		}
		if line == 1 {
			continue
		}
		if len(row) < 3 {
			l.logger.Printf("ratings: skipping malformed line %d: %q", line, row)
			continue
		}
		name := domain.Normalize(row[0])
		if name == "" {
			l.logger.Printf("ratings: empty movie name at line %d", line)
			continue
		}
		rating, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			l.logger.Printf("ratings: bad rating at line %d: %q", line, row[1])
			continue
		}
		if rating < 0.0 || rating > 5.0 {
			l.logger.Printf("ratings: out-of-range rating at line %d: %v", line, rating)
			continue
		}
		userID := strings.TrimSpace(row[2])
		store[name] = append(store[name], domain.RatingObservation{UserID: userID, Rating: rating})
		total++
	}
	l.logger.Printf("dataset: loaded %d ratings for %d movies from %s", total, len(store), path)
	return store, nil
}

func (l *Loader) open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	return f, nil
}

func newReader(f *os.File) *csv.Reader {
	r := csv.NewReader(f)
	r.Comma = '|'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r
}
