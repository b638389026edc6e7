package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"library-circulation/library"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		fineRate     string
		bookDays     int
		magazineDays int
		seedPath     string
		promptConfig bool
	)

	cmd := &cobra.Command{
		Use:   "library-circulation",
		Short: "In-memory library catalog and circulation tracker",
		Long: "Registers books, magazines and members, and processes borrow/return\n" +
			"transactions with due-date computation and overdue-fine reporting.\n" +
			"All state lives in memory and is discarded on exit.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := bufio.NewScanner(os.Stdin)

			rate, err := decimal.NewFromString(fineRate)
			if err != nil || rate.IsNegative() {
				return fmt.Errorf("invalid --fine-rate %q: must be a non-negative decimal", fineRate)
			}
			cfg := library.Config{
				DailyFineRate:      rate,
				BookBorrowDays:     bookDays,
				MagazineBorrowDays: magazineDays,
			}
			if promptConfig {
				cfg = promptConfiguration(sc)
			}

			lib := library.New(cfg)

			if seedPath != "" {
				catalog, err := library.LoadCatalog(seedPath)
				if err != nil {
					return err
				}
				report := catalog.Apply(lib)
				fmt.Printf("Seeded %d catalog entries from %s\n", report.Added, seedPath)
				for _, reason := range report.Skipped {
					fmt.Printf("  skipped %s\n", reason)
				}
			}

			runMenu(sc, lib)
			return nil
		},
	}

	cmd.Flags().StringVar(&fineRate, "fine-rate", "0.50", "daily fine rate for overdue items")
	cmd.Flags().IntVar(&bookDays, "book-days", library.DefaultBookBorrowDays, "borrow period for books in days")
	cmd.Flags().IntVar(&magazineDays, "magazine-days", library.DefaultMagazineBorrowDays, "borrow period for magazines in days")
	cmd.Flags().StringVar(&seedPath, "seed", "", "JSON catalog file to load at startup")
	cmd.Flags().BoolVar(&promptConfig, "interactive-config", false, "prompt for configuration at startup")

	return cmd
}

// promptConfiguration asks for the fine rate and borrow periods, falling back
// to the defaults on non-positive day values.
func promptConfiguration(sc *bufio.Scanner) library.Config {
	fmt.Println("========================================")
	fmt.Println("   LIBRARY SYSTEM CONFIGURATION")
	fmt.Println("========================================")

	fmt.Print("Enter daily fine rate (e.g., 0.50 for $0.50 per day): $")
	rate := promptDecimal(sc)

	fmt.Printf("Enter book borrow period (days, default %d): ", library.DefaultBookBorrowDays)
	bookDays := promptInt(sc)

	fmt.Printf("Enter magazine borrow period (days, default %d): ", library.DefaultMagazineBorrowDays)
	magazineDays := promptInt(sc)

	cfg := library.Config{
		DailyFineRate:      rate,
		BookBorrowDays:     bookDays,
		MagazineBorrowDays: magazineDays,
	}

	fmt.Println("\nConfiguration saved:")
	fmt.Printf("- Daily fine rate: $%s\n", cfg.DailyFineRate.StringFixed(2))
	fmt.Printf("- Book borrow period: %d days\n", cfg.BookBorrowDays)
	fmt.Printf("- Magazine borrow period: %d days\n", cfg.MagazineBorrowDays)
	return cfg
}

func runMenu(sc *bufio.Scanner, lib *library.Library) {
	fmt.Println("=========================================")
	fmt.Println("   WELCOME TO LIBRARY MANAGEMENT SYSTEM")
	fmt.Println("=========================================")

	for {
		fmt.Println("\n========== MAIN MENU ==========")
		fmt.Println("1. Display All Items")
		fmt.Println("2. Add New Book")
		fmt.Println("3. Add New Magazine")
		fmt.Println("4. Add New Member")
		fmt.Println("5. Borrow Item")
		fmt.Println("6. Return Item")
		fmt.Println("7. Search Item by ID")
		fmt.Println("8. Display Member Info")
		fmt.Println("9. Check Overdue Items")
		fmt.Println("10. Exit")
		fmt.Print("Enter your choice (1-10): ")

		switch promptInt(sc) {
		case 1:
			displayAllItems(lib)
		case 2:
			handleAddBook(sc, lib)
		case 3:
			handleAddMagazine(sc, lib)
		case 4:
			handleAddMember(sc, lib)
		case 5:
			handleBorrow(sc, lib)
		case 6:
			handleReturn(sc, lib)
		case 7:
			handleSearchItem(sc, lib)
		case 8:
			handleMemberInfo(sc, lib)
		case 9:
			handleOverdueReport(sc, lib)
		case 10:
			fmt.Println("Thank you for using the Library Management System!")
			return
		default:
			fmt.Println("Invalid choice! Please enter a number between 1-10.")
		}
	}
}

// ------------------ Handlers ------------------

func displayAllItems(lib *library.Library) {
	fmt.Println("\n=== Library Items ===")
	items := lib.AllItems()
	if len(items) == 0 {
		fmt.Println("No items in the library.")
		return
	}

	for _, item := range items {
		fmt.Println(item.Details())
		status := "Available"
		if !item.IsAvailable() {
			status = "Borrowed"
		}
		fmt.Printf("Status: %s\n", status)
		cfg := lib.Config()
		fmt.Printf("Borrow Period: %d days\n", item.BorrowDays(&cfg))

		if record, ok := lib.BorrowRecordFor(item.ID()); ok {
			fmt.Printf("Borrowed by: %s\n", record.MemberID())
			fmt.Printf("Due Date: %s\n", record.DueDate().Format("2006-01-02"))
			if record.IsOverdue(lib.Now()) {
				fmt.Printf("OVERDUE by %d days\n", record.DaysOverdue(lib.Now()))
			}
		}
		fmt.Println("---")
	}
}

func handleAddBook(sc *bufio.Scanner, lib *library.Library) {
	fmt.Println("\n=== Add New Book ===")
	id := promptID(sc, "Enter Book ID (blank to generate): ")
	title := promptLine(sc, "Enter Book Title: ")
	author := promptLine(sc, "Enter Author Name: ")
	isbn := promptLine(sc, "Enter ISBN: ")

	book := library.NewBook(id, title, author, isbn)
	if err := lib.AddItem(book); err != nil {
		fmt.Printf("Error adding book: %v\n", err)
		return
	}
	fmt.Printf("Added: %s (ID: %s)\n", book.Title(), book.ID())
}

func handleAddMagazine(sc *bufio.Scanner, lib *library.Library) {
	fmt.Println("\n=== Add New Magazine ===")
	id := promptID(sc, "Enter Magazine ID (blank to generate): ")
	title := promptLine(sc, "Enter Magazine Title: ")
	issueDate := promptDate(sc, "Enter Issue Date (YYYY-MM-DD): ")
	fmt.Print("Enter Issue Number: ")
	issueNumber := promptInt(sc)

	magazine := library.NewMagazine(id, title, issueDate, issueNumber)
	if err := lib.AddItem(magazine); err != nil {
		fmt.Printf("Error adding magazine: %v\n", err)
		return
	}
	fmt.Printf("Added: %s (ID: %s)\n", magazine.Title(), magazine.ID())
}

func handleAddMember(sc *bufio.Scanner, lib *library.Library) {
	fmt.Println("\n=== Add New Member ===")
	id := promptID(sc, "Enter Member ID (blank to generate): ")
	name := promptLine(sc, "Enter Member Name: ")
	email := promptLine(sc, "Enter Email: ")

	member := library.NewMember(id, name, email)
	if err := lib.AddMember(member); err != nil {
		fmt.Printf("Error adding member: %v\n", err)
		return
	}
	fmt.Printf("Member added: %s (ID: %s)\n", member.Name(), member.ID())
}

func handleBorrow(sc *bufio.Scanner, lib *library.Library) {
	fmt.Println("\n=== Borrow Item ===")
	memberID := promptLine(sc, "Enter Member ID: ")
	itemID := promptLine(sc, "Enter Item ID: ")

	if err := lib.BorrowItem(memberID, itemID); err != nil {
		explainBorrowFailure(lib, memberID, itemID, err)
		return
	}

	member, _ := lib.FindMember(memberID)
	item, _ := lib.FindItem(itemID)
	fmt.Printf("%s successfully borrowed: %s\n", member.Name(), item.Title())
	if record, ok := lib.BorrowRecordFor(itemID); ok {
		fmt.Printf("Due Date: %s\n", record.DueDate().Format("2006-01-02"))
	}
}

func explainBorrowFailure(lib *library.Library, memberID, itemID string, err error) {
	switch {
	case errors.Is(err, library.ErrMemberNotFound):
		fmt.Printf("Member with ID '%s' not found.\n", memberID)
	case errors.Is(err, library.ErrItemNotFound):
		fmt.Printf("Item with ID '%s' not found.\n", itemID)
	case errors.Is(err, library.ErrItemUnavailable):
		fmt.Println("Item is already borrowed by someone else.")
	case errors.Is(err, library.ErrMemberOverdue):
		fmt.Println("Member has overdue items. Please return them first.")
		fmt.Printf("Total outstanding fines: $%s\n", lib.TotalFines(memberID).StringFixed(2))
	default:
		fmt.Printf("Unable to borrow item: %v\n", err)
	}
}

func handleReturn(sc *bufio.Scanner, lib *library.Library) {
	fmt.Println("\n=== Return Item ===")
	memberID := promptLine(sc, "Enter Member ID: ")
	itemID := promptLine(sc, "Enter Item ID: ")

	// Snapshot the record before returning so the fine can still be reported.
	record, hadRecord := lib.BorrowRecordFor(itemID)

	if err := lib.ReturnItem(memberID, itemID); err != nil {
		switch {
		case errors.Is(err, library.ErrMemberNotFound):
			fmt.Printf("Member with ID '%s' not found.\n", memberID)
		case errors.Is(err, library.ErrItemNotFound):
			fmt.Printf("Item with ID '%s' not found.\n", itemID)
		case errors.Is(err, library.ErrNotBorrowed), errors.Is(err, library.ErrNotBorrower):
			fmt.Println("This item was not borrowed by this member.")
		default:
			fmt.Printf("Unable to return item: %v\n", err)
		}
		return
	}

	member, _ := lib.FindMember(memberID)
	item, _ := lib.FindItem(itemID)
	fmt.Printf("%s successfully returned: %s\n", member.Name(), item.Title())

	if hadRecord && record.IsOverdue(lib.Now()) {
		fine := record.Fine(lib.Now(), lib.Config().DailyFineRate)
		fmt.Printf("Item returned late! Fine applied: $%s\n", fine.StringFixed(2))
		fmt.Printf("Days overdue: %d\n", record.DaysOverdue(lib.Now()))
	}
}

func handleSearchItem(sc *bufio.Scanner, lib *library.Library) {
	fmt.Println("\n=== Search Item ===")
	itemID := promptLine(sc, "Enter Item ID: ")

	item, ok := lib.FindItem(itemID)
	if !ok {
		fmt.Printf("Item with ID '%s' not found.\n", itemID)
		return
	}

	fmt.Println("\n=== Item Found ===")
	fmt.Println(item.Details())
	status := "Available"
	if !item.IsAvailable() {
		status = "Borrowed"
	}
	fmt.Printf("Status: %s\n", status)
	cfg := lib.Config()
	fmt.Printf("Borrow Period: %d days\n", item.BorrowDays(&cfg))

	if record, ok := lib.BorrowRecordFor(itemID); ok {
		fmt.Printf("Borrowed by: %s\n", record.MemberID())
		fmt.Printf("Borrow Date: %s\n", record.BorrowDate().Format("2006-01-02"))
		fmt.Printf("Due Date: %s\n", record.DueDate().Format("2006-01-02"))
		if record.IsOverdue(lib.Now()) {
			fmt.Printf("OVERDUE by %d days\n", record.DaysOverdue(lib.Now()))
		}
	}
}

func handleMemberInfo(sc *bufio.Scanner, lib *library.Library) {
	fmt.Println("\n=== Member Information ===")
	memberID := promptLine(sc, "Enter Member ID: ")

	member, ok := lib.FindMember(memberID)
	if !ok {
		fmt.Printf("Member with ID '%s' not found.\n", memberID)
		return
	}

	fmt.Printf("Member ID: %s\n", member.ID())
	fmt.Printf("Name: %s\n", member.Name())
	fmt.Printf("Email: %s\n", member.Email())
	held := member.BorrowedItems()
	fmt.Printf("Borrowed Items: %d\n", len(held))

	if len(held) > 0 {
		fmt.Println("\nCurrently Borrowed Items:")
		for _, item := range held {
			fmt.Printf("- %s (ID: %s)\n", item.Title(), item.ID())
			if record, ok := lib.BorrowRecordFor(item.ID()); ok {
				fmt.Printf("  Due: %s\n", record.DueDate().Format("2006-01-02"))
				if record.IsOverdue(lib.Now()) {
					fmt.Printf("  OVERDUE by %d days\n", record.DaysOverdue(lib.Now()))
				}
			}
		}
	}

	if fines := lib.TotalFines(memberID); fines.IsPositive() {
		fmt.Printf("\nTotal Outstanding Fines: $%s\n", fines.StringFixed(2))
	}
}

func handleOverdueReport(sc *bufio.Scanner, lib *library.Library) {
	fmt.Println("\n=== Overdue Items Report ===")
	memberID := promptLine(sc, "Enter Member ID (or press Enter for all members): ")

	if memberID == "" {
		hasOverdue := false
		for _, member := range lib.AllMembers() {
			if printMemberOverdue(lib, member) {
				hasOverdue = true
			}
		}
		if !hasOverdue {
			fmt.Println("No overdue items found!")
		}
		return
	}

	member, ok := lib.FindMember(memberID)
	if !ok {
		fmt.Printf("Member with ID '%s' not found.\n", memberID)
		return
	}
	if !printMemberOverdue(lib, member) {
		fmt.Println("No overdue items for this member.")
	}
}

// printMemberOverdue lists a member's overdue loans and total fines. It
// reports whether the member had any.
func printMemberOverdue(lib *library.Library, member *library.Member) bool {
	overdue := lib.OverdueItems(member.ID())
	if len(overdue) == 0 {
		return false
	}

	fmt.Printf("\nMember: %s (%s)\n", member.Name(), member.ID())
	for _, record := range overdue {
		if item, ok := lib.FindItem(record.ItemID()); ok {
			fmt.Printf("  %s (ID: %s)\n", item.Title(), item.ID())
		}
		fmt.Printf("     Due: %s\n", record.DueDate().Format("2006-01-02"))
		fmt.Printf("     Overdue by: %d days\n", record.DaysOverdue(lib.Now()))
	}
	fmt.Printf("  Total Fines: $%s\n", lib.TotalFines(member.ID()).StringFixed(2))
	return true
}

// ------------------ Input helpers ------------------

// promptLine prints the prompt and reads one trimmed line. EOF yields "".
func promptLine(sc *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	if !sc.Scan() {
		return ""
	}
	return strings.TrimSpace(sc.Text())
}

// promptID reads an identifier, generating one when left blank.
func promptID(sc *bufio.Scanner, prompt string) string {
	id := promptLine(sc, prompt)
	if id == "" {
		id = uuid.NewString()
		fmt.Printf("Generated ID: %s\n", id)
	}
	return id
}

// promptInt re-prompts until the input parses as an integer.
func promptInt(sc *bufio.Scanner) int {
	for {
		if !sc.Scan() {
			return 0
		}
		n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err == nil {
			return n
		}
		fmt.Print("Please enter a valid number: ")
	}
}

// promptDecimal re-prompts until the input parses as a non-negative decimal.
func promptDecimal(sc *bufio.Scanner) decimal.Decimal {
	for {
		if !sc.Scan() {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(strings.TrimSpace(sc.Text()))
		if err == nil && !d.IsNegative() {
			return d
		}
		fmt.Print("Please enter a valid number: ")
	}
}

// promptDate re-prompts until the input parses as an ISO calendar date.
func promptDate(sc *bufio.Scanner, prompt string) time.Time {
	for {
		fmt.Print(prompt)
		if !sc.Scan() {
			return time.Time{}
		}
		d, err := time.Parse("2006-01-02", strings.TrimSpace(sc.Text()))
		if err == nil {
			return d
		}
		fmt.Println("Invalid date format. Please use YYYY-MM-DD format.")
	}
}
