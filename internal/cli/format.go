package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"imobdesk/internal/client"
	"imobdesk/internal/commission"
	"imobdesk/internal/contract"
	"imobdesk/internal/property"
	"imobdesk/internal/visit"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printWarning writes a warning line to stderr.
func printWarning(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

// printPropertyTable prints a list of properties as a formatted table.
func printPropertyTable(props []property.Property) error {
	if len(props) == 0 {
		fmt.Println("No properties found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tTITLE\tCITY\tPRICE\tTYPE\tSTATUS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}

	for _, p := range props {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\tR$%s\t%s\t%s\n",
			p.ID, p.Title, p.City, formatAmount(p.Price), p.Type, p.Status); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	return w.Flush()
}

// printClientTable prints a list of clients as a formatted table.
func printClientTable(clients []client.Client) error {
	if len(clients) == 0 {
		fmt.Println("No clients found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCITY\tVIEWED\tVISITS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}

	for _, c := range clients {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
			c.ID, c.Name, c.Email, c.City, c.ViewedProperties, c.ScheduledVisits); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	return w.Flush()
}

// printVisitTable prints a list of visits as a formatted table.
func printVisitTable(visits []visit.Visit) error {
	if len(visits) == 0 {
		fmt.Println("No visits found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tDATE\tTIME\tCLIENT\tAGENT\tPROPERTY\tSTATUS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}

	for _, v := range visits {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			v.ID, v.Date, v.Time, v.ClientName, v.AgentName, v.PropertyTitle, v.Status); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	return w.Flush()
}

// printContractTable prints a list of contracts as a formatted table.
func printContractTable(contracts []contract.Contract) error {
	if len(contracts) == 0 {
		fmt.Println("No contracts found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tPROPERTY\tCLIENT\tTYPE\tDATE\tVALUE\tSTATUS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}

	for _, c := range contracts {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\tR$%s\t%s\n",
			c.ID, c.PropertyTitle, c.ClientName, c.Type, c.Date, formatAmount(c.Value), c.Status); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	return w.Flush()
}

// printCommissionTable prints a list of commissions as a formatted table.
func printCommissionTable(commissions []commission.Commission) error {
	if len(commissions) == 0 {
		fmt.Println("No commissions found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tAGENT\tPROPERTY\tCLIENT\tDATE\tVALUE\tSTATUS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}

	for _, c := range commissions {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\tR$%s\t%s\n",
			c.ID, c.AgentName, c.PropertyTitle, c.ClientName, c.Date, formatAmount(c.Value), c.Status); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	return w.Flush()
}

// formatAmount formats a currency amount with thousands separators.
func formatAmount(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ".")
}
