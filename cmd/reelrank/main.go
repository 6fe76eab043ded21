package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/reelrank/reelrank/internal/dataset"
	"github.com/reelrank/reelrank/internal/recommend"
)

type session struct {
	moviesFile  string
	ratingsFile string
	loader      *dataset.Loader
	engine      *recommend.Engine
	in          *bufio.Reader
}

func main() {
	var (
		moviesFile  = flag.String("movies", "movies.txt", "path to pipe-delimited movies file")
		ratingsFile = flag.String("ratings", "ratings.txt", "path to pipe-delimited ratings file")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "[reelrank] ", log.LstdFlags)

	s := &session{
		moviesFile:  *moviesFile,
		ratingsFile: *ratingsFile,
		loader:      dataset.NewLoader(logger),
		engine:      recommend.New(nil, nil),
		in:          bufio.NewReader(os.Stdin),
	}
	s.reload()
	s.run()
}

// reload builds a fresh snapshot and swaps the engine; a missing file is a
// message, not a fatal error, and leaves the previous engine in place.
func (s *session) reload() {
	snap, err := s.loader.Load(s.moviesFile, s.ratingsFile)
	if err != nil {
		if errors.Is(err, dataset.ErrNotFound) {
			fmt.Printf("data file missing: %v\n", err)
			return
		}
		fmt.Printf("load failed: %v\n", err)
		return
	}
	s.engine = recommend.New(snap.Catalog, snap.Ratings)
}

func (s *session) run() {
	for {
		fmt.Println("\nreelrank")
		fmt.Println("1. Reload data files")
		fmt.Println("2. Top n movies (overall)")
		fmt.Println("3. Top n movies in genre")
		fmt.Println("4. Top n genres")
		fmt.Println("5. User top genre")
		fmt.Println("6. Recommend movies for user")
		fmt.Println("7. Exit")

		choice, err := s.readInt("Choose an option: ")
		if err != nil {
			fmt.Println("Invalid choice")
			continue
		}

		switch choice {
		case 1:
			s.reload()
		case 2:
			s.menuTopMovies()
		case 3:
			s.menuTopMoviesInGenre()
		case 4:
			s.menuTopGenres()
		case 5:
			s.menuUserTopGenre()
		case 6:
			s.menuRecommend()
		case 7:
			fmt.Println("Goodbye")
			return
		default:
			fmt.Println("Invalid choice")
		}
	}
}

func (s *session) menuTopMovies() {
	n, err := s.readInt("How many top movies? (n): ")
	if err != nil {
		fmt.Println("Invalid number")
		return
	}
	printList("Top movies:", s.engine.TopMovies(n))
}

func (s *session) menuTopMoviesInGenre() {
	genre := s.readLine("Genre: ")
	n, err := s.readInt("How many top movies in this genre? (n): ")
	if err != nil {
		fmt.Println("Invalid number")
		return
	}
	printList(fmt.Sprintf("Top %d movies in %s:", n, genre), s.engine.TopMoviesInGenre(n, genre))
}

func (s *session) menuTopGenres() {
	n, err := s.readInt("How many top genres? (n): ")
	if err != nil {
		fmt.Println("Invalid number")
		return
	}
	printList("Top genres:", s.engine.TopGenres(n))
}

func (s *session) menuUserTopGenre() {
	user := s.readLine("User id: ")
	fmt.Printf("\nUser %s top genre: %s\n", user, s.engine.UserTopGenre(user))
}

func (s *session) menuRecommend() {
	user := s.readLine("User id: ")
	recs := s.engine.RecommendMovies(user)
	if len(recs) == 0 {
		fmt.Printf("\nRecommendations for user %s:\n  (no recommendations)\n", user)
		return
	}
	printList(fmt.Sprintf("Recommendations for user %s:", user), recs)
}

func (s *session) readLine(prompt string) string {
	fmt.Print(prompt)
	line, _ := s.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (s *session) readInt(prompt string) (int, error) {
	return strconv.Atoi(s.readLine(prompt))
}

func printList(header string, items []string) {
	fmt.Println("\n" + header)
	for i, item := range items {
		fmt.Printf("%d. %s\n", i+1, item)
	}
}
