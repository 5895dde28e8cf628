package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

// RunTicket выдает билет chargeID
func (c *Cli) RunTicket(ctx context.Context, chargeID, price int) error {
	c.io.Println("=== Issue Ticket ===")

	err := c.withLogin(ctx, func() error {
		return c.account.Ticket(ctx, chargeID, price)
	})
	if err != nil {
		return fmt.Errorf("ticket failed: %w", err)
	}

	c.io.Printf("✓ Ticket %d issued\n", chargeID)
	return nil
}

// RunTickets выводит билеты аккаунта
func (c *Cli) RunTickets(ctx context.Context) error {
	c.io.Println("=== Tickets ===")

	err := c.withLogin(ctx, func() error {
		resp, err := c.account.ActiveTickets(ctx)
		if err != nil {
			return err
		}

		if len(resp.UserChargeList) == 0 {
			c.io.Println("No tickets found.")
			return nil
		}

		w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTOCK\tPURCHASED\tVALID UNTIL")
		for _, t := range resp.UserChargeList {
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", t.ChargeID, t.Stock, t.PurchaseDate, t.ValidDate)
		}
		return w.Flush()
	})
	if err != nil {
		return fmt.Errorf("failed to list tickets: %w", err)
	}
	return nil
}
