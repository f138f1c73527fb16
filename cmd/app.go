// Package cmd implements the CLI application to run the shop: recording
// sales, maintaining the product catalog, searching the ledger and reporting.
// All interactive prompting lives here; the puppyshop package only validates.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	puppyshop "github.com/Brenda-fassie/Puppy-shop"
)

// Register registers all shop subcommands on the commander.
func Register(c *subcommands.Commander) {
	c.Register(&sellCmd{}, "sales")
	c.Register(&salesCmd{}, "sales")

	c.Register(&productsCmd{}, "catalog")
	c.Register(&addProductCmd{}, "catalog")
	c.Register(&modifyProductCmd{}, "catalog")

	c.Register(&monthlyCmd{}, "reports")
	c.Register(&topProductsCmd{}, "reports")

	c.Register(&shellCmd{}, "")
}

// as a CLI application with a short lived lifecycle, global flags are fine.

var (
	dataDir  = flag.String("data-dir", "", "directory holding the shop data files (default $PUP_DATA_DIR or .)")
	username = flag.String("u", "", "username to authenticate as (default $PUP_USER)")
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

type config struct {
	paths    puppyshop.Paths
	currency string
}

var loadConfig = sync.OnceValue(func() config {
	// A .env file next to the data is optional; real environment wins.
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("loaded .env")
	}
	dir := *dataDir
	if dir == "" {
		dir = envOr("PUP_DATA_DIR", ".")
	}
	return config{
		paths: puppyshop.Paths{
			Products: filepath.Join(dir, envOr("PUP_PRODUCTS_FILE", "puppy.csv")),
			Sales:    filepath.Join(dir, envOr("PUP_SALES_FILE", "sales.csv")),
			Users:    filepath.Join(dir, envOr("PUP_USERS_FILE", "users.csv")),
		},
		currency: envOr("PUP_CURRENCY", "USD"),
	}
})

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// openStore loads the three collections. A load failure here is fatal for
// the command.
func openStore() (*puppyshop.Store, config, error) {
	cfg := loadConfig()
	store, err := puppyshop.Open(cfg.paths)
	if err != nil {
		return nil, cfg, err
	}
	logger.Debug().
		Int("products", store.Catalog.Len()).
		Int("sales", store.Ledger.Len()).
		Int("users", store.Credentials.Len()).
		Msg("data loaded")
	return store, cfg, nil
}

// flushStore writes the catalog and ledger back to their files.
func flushStore(store *puppyshop.Store) subcommands.ExitStatus {
	if err := store.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving data: %v\n", err)
		return subcommands.ExitFailure
	}
	logger.Debug().Msg("data saved")
	return subcommands.ExitSuccess
}

// login authenticates against the credentials list. The username comes from
// the -u flag or $PUP_USER, prompted for when absent; the password comes
// from $PUP_PASSWORD or a no-echo prompt.
func login(creds *puppyshop.Credentials) (puppyshop.Role, error) {
	user := *username
	if user == "" {
		user = os.Getenv("PUP_USER")
	}
	in := bufio.NewReader(os.Stdin)
	if user == "" {
		fmt.Print("Username: ")
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("could not read username: %w", err)
		}
		user = strings.TrimSpace(line)
	}

	pass := os.Getenv("PUP_PASSWORD")
	if pass == "" {
		fmt.Print("Password: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("could not read password: %w", err)
		}
		pass = string(raw)
	}

	role, ok := creds.Authenticate(user, pass)
	if !ok {
		return "", fmt.Errorf("invalid username or password")
	}
	logger.Info().Str("user", user).Str("role", string(role)).Msg("login successful")
	return role, nil
}

// requireManager authenticates and rejects roles that may not manage the
// catalog.
func requireManager(creds *puppyshop.Credentials) error {
	role, err := login(creds)
	if err != nil {
		return err
	}
	if !role.CanManageCatalog() {
		return fmt.Errorf("role %q is not allowed to manage the catalog", role)
	}
	return nil
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// prompt writes a question and reads one trimmed line.
func prompt(in *bufio.Reader, out io.Writer, question string) (string, error) {
	fmt.Fprint(out, question)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
