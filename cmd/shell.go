package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"syscall"
	"time"

	"github.com/google/subcommands"
	"golang.org/x/term"

	puppyshop "github.com/Brenda-fassie/Puppy-shop"
	"github.com/Brenda-fassie/Puppy-shop/renderer"
)

type shellCmd struct{}

func (*shellCmd) Name() string             { return "shell" }
func (*shellCmd) Synopsis() string         { return "run the interactive shop session" }
func (*shellCmd) SetFlags(f *flag.FlagSet) {}
func (*shellCmd) Usage() string {
	return `pup shell

  Loads the shop data, prompts for a login, and presents a role-gated menu
  until logout. All changes are written back to the data files on logout.
`
}

func (c *shellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, cfg, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Data loaded successfully.")
	fmt.Printf("Loaded %d sales records, %d products, %d users.\n",
		store.Ledger.Len(), store.Catalog.Len(), store.Credentials.Len())

	s := &session{
		store: store,
		cfg:   cfg,
		in:    bufio.NewReader(os.Stdin),
		out:   os.Stdout,
	}
	if err := s.login(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	s.run()

	if st := flushStore(store); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Println("Data saved. Logging out. Goodbye!")
	return subcommands.ExitSuccess
}

// session holds the state of one interactive run: the loaded store, the
// authenticated role, and the prompt streams.
type session struct {
	store *puppyshop.Store
	cfg   config
	role  puppyshop.Role
	in    *bufio.Reader
	out   io.Writer
}

// login reprompts until a credential pair matches.
func (s *session) login() error {
	fmt.Fprintln(s.out, "\n--- Login ---")
	for {
		user, err := prompt(s.in, s.out, "Username: ")
		if err != nil {
			return fmt.Errorf("could not read username: %w", err)
		}
		fmt.Fprint(s.out, "Password: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(s.out)
		if err != nil {
			return fmt.Errorf("could not read password: %w", err)
		}
		role, ok := s.store.Credentials.Authenticate(user, string(raw))
		if !ok {
			fmt.Fprintln(s.out, "Invalid username or password. Please try again.")
			continue
		}
		s.role = role
		fmt.Fprintf(s.out, "\nLogin successful! Welcome, %s.\n", role)
		return nil
	}
}

func (s *session) run() {
	for {
		s.menu()
		choice, err := prompt(s.in, s.out, "Enter your choice: ")
		if err != nil {
			return
		}
		switch choice {
		case "1":
			s.sell()
		case "2":
			s.searchByDate()
		case "3":
			s.searchByName()
		case "4":
			s.searchByNameAndRange()
		case "5":
			s.monthlyReport("")
		case "6":
			s.productMonthlyReport()
		case "7":
			s.topProducts()
		case "8":
			if s.role.CanManageCatalog() {
				s.addProduct()
				continue
			}
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		case "9":
			if s.role.CanManageCatalog() {
				s.modifyProduct()
				continue
			}
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		case "0":
			return
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *session) menu() {
	fmt.Fprintln(s.out, "\n--- Menu ---")
	fmt.Fprintln(s.out, "1. Enter a sales record")
	fmt.Fprintln(s.out, "2. Search sales by date")
	fmt.Fprintln(s.out, "3. Search sales by product name")
	fmt.Fprintln(s.out, "4. Search sales by product name and date range")
	fmt.Fprintln(s.out, "5. Display monthly sales performance")
	fmt.Fprintln(s.out, "6. Display monthly sales for one product")
	fmt.Fprintln(s.out, "7. Display total sales by product")
	if s.role.CanManageCatalog() {
		fmt.Fprintln(s.out, "8. Add a new puppy product")
		fmt.Fprintln(s.out, "9. Modify a puppy product")
	}
	fmt.Fprintln(s.out, "0. Logout")
}

func (s *session) sell() {
	printMarkdown(renderer.Products(s.store.Catalog, s.cfg.currency))
	query, err := prompt(s.in, s.out, "Enter the product ID or name: ")
	if err != nil {
		return
	}
	product, err := resolveProduct(s.store.Catalog, query, s.cfg.currency, s.in, s.out)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	answer, err := prompt(s.in, s.out, fmt.Sprintf("Enter quantity for %s: ", product.Name))
	if err != nil {
		return
	}
	quantity, err := parseQuantity(answer)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	sale, err := s.store.Ledger.RecordSale(s.store.Catalog, product.ID, quantity, time.Now())
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprint(s.out, renderer.Receipt(s.store.Catalog, sale, s.cfg.currency))
}

func (s *session) searchByDate() {
	answer, err := prompt(s.in, s.out, "Enter date (DD/MM/YYYY): ")
	if err != nil {
		return
	}
	day, err := puppyshop.ParseDate(answer)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	printMarkdown(renderer.Sales(s.store.Catalog, s.store.Ledger.OnDate(day), s.cfg.currency))
}

func (s *session) searchByName() {
	name, err := prompt(s.in, s.out, "Enter product name (or part of it): ")
	if err != nil {
		return
	}
	printMarkdown(renderer.Sales(s.store.Catalog, s.store.Ledger.ByProductName(s.store.Catalog, name), s.cfg.currency))
}

func (s *session) searchByNameAndRange() {
	name, err := prompt(s.in, s.out, "Enter product name (or part of it): ")
	if err != nil {
		return
	}
	rng, ok := s.askDateRange()
	if !ok {
		return
	}
	printMarkdown(renderer.Sales(s.store.Catalog, s.store.Ledger.ByProductNameInRange(s.store.Catalog, name, rng), s.cfg.currency))
}

func (s *session) monthlyReport(productID string) {
	rng, ok := s.askMonthRange()
	if !ok {
		return
	}
	var buckets []puppyshop.MonthlyBucket
	if productID == "" {
		buckets = s.store.Ledger.Monthly(rng)
	} else {
		buckets = s.store.Ledger.MonthlyForProduct(rng, productID)
	}
	printMarkdown(renderer.Monthly(buckets, s.cfg.currency))
}

func (s *session) productMonthlyReport() {
	printMarkdown(renderer.Products(s.store.Catalog, s.cfg.currency))
	query, err := prompt(s.in, s.out, "Enter product ID: ")
	if err != nil {
		return
	}
	product, ok := s.store.Catalog.Get(query)
	if !ok {
		fmt.Fprintln(s.out, "Error: Product ID not found.")
		return
	}
	s.monthlyReport(product.ID)
}

func (s *session) topProducts() {
	rng, ok := s.askDateRange()
	if !ok {
		return
	}
	printMarkdown(renderer.ProductTotals(s.store.Ledger.ProductTotals(s.store.Catalog, rng), s.cfg.currency))
}

func (s *session) addProduct() {
	fmt.Fprintln(s.out, "\n--- Add a New Puppy Product ---")
	name, err := prompt(s.in, s.out, "Enter product name: ")
	if err != nil {
		return
	}
	price, err := prompt(s.in, s.out, "Enter product price: ")
	if err != nil {
		return
	}
	stock, err := prompt(s.in, s.out, "Enter initial stock level: ")
	if err != nil {
		return
	}
	p, err := s.store.Catalog.Add(puppyshop.AddProductInput{Name: name, Price: price, Stock: stock})
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Product %q added successfully with ID %s.\n", p.Name, p.ID)
}

func (s *session) modifyProduct() {
	fmt.Fprintln(s.out, "\n--- Modify Puppy Product Details ---")
	printMarkdown(renderer.Products(s.store.Catalog, s.cfg.currency))
	query, err := prompt(s.in, s.out, "Enter product ID or product name: ")
	if err != nil {
		return
	}
	product, err := resolveProduct(s.store.Catalog, query, s.cfg.currency, s.in, s.out)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "\nModifying product: %s (ID: %s)\n", product.Name, product.ID)
	fmt.Fprintln(s.out, "Leave blank to keep current value")
	price, err := prompt(s.in, s.out, fmt.Sprintf("Enter new price (current: %s): ", product.Price))
	if err != nil {
		return
	}
	stock, err := prompt(s.in, s.out, fmt.Sprintf("Enter new stock level (current: %d): ", product.Stock))
	if err != nil {
		return
	}
	p, err := s.store.Catalog.Modify(product.ID, puppyshop.ModifyProductInput{Price: price, Stock: stock})
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Product %q updated successfully.\n", p.Name)
}

func (s *session) askDateRange() (puppyshop.Range, bool) {
	startStr, err := prompt(s.in, s.out, "Enter start date (DD/MM/YYYY): ")
	if err != nil {
		return puppyshop.Range{}, false
	}
	endStr, err := prompt(s.in, s.out, "Enter end date (DD/MM/YYYY): ")
	if err != nil {
		return puppyshop.Range{}, false
	}
	start, err := puppyshop.ParseDate(startStr)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return puppyshop.Range{}, false
	}
	end, err := puppyshop.ParseDate(endStr)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return puppyshop.Range{}, false
	}
	return puppyshop.NewRange(start, end), true
}

func (s *session) askMonthRange() (puppyshop.Range, bool) {
	startStr, err := prompt(s.in, s.out, "Enter start month (MM/YYYY): ")
	if err != nil {
		return puppyshop.Range{}, false
	}
	endStr, err := prompt(s.in, s.out, "Enter end month (MM/YYYY): ")
	if err != nil {
		return puppyshop.Range{}, false
	}
	from, err := puppyshop.ParseMonth(startStr)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return puppyshop.Range{}, false
	}
	to, err := puppyshop.ParseMonth(endStr)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return puppyshop.Range{}, false
	}
	return puppyshop.MonthRange(from, to), true
}
