package display

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// Console is a synchronous line-oriented table display. Every prompt
// blocks until the player supplies a usable value; malformed input is
// answered with an error message and the same prompt again.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	styles *Styles
}

var _ game.UI = (*Console)(nil)

// NewConsole creates a console reading prompts from in and writing to out
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		styles: DefaultStyles(),
	}
}

// Banner prints the table banner
func (c *Console) Banner() {
	fmt.Fprintln(c.out, c.styles.Banner.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	fmt.Fprintln(c.out)
}

// PromptSeats asks how many players want a chair, re-prompting until a
// valid count between 1 and max is given.
func (c *Console) PromptSeats(max int) int {
	for {
		n, err := c.readInt(fmt.Sprintf("How many players would like a chair at the table? (max %d) ", max))
		if err != nil {
			c.errorf("Please enter a number.")
			continue
		}
		if n <= 0 || n > max {
			c.errorf("The table seats between 1 and %d players.", max)
			continue
		}
		return n
	}
}

// PromptName asks the ith player (1-based) for a name, defaulting to
// "Player i" on blank input.
func (c *Console) PromptName(i int) string {
	name := c.readLine(c.styles.Prompt.Render(fmt.Sprintf("Player %d, choose a name: ", i)))
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Player %d", i)
	}
	return name
}

// PromptNextRound asks whether to play another hand
func (c *Console) PromptNextRound() bool {
	for {
		answer := strings.ToLower(strings.TrimSpace(c.readLine(c.styles.Prompt.Render("Play another hand? (y/n) "))))
		switch answer {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		c.errorf("Please answer 'y' or 'n'.")
	}
}

// PromptBet asks the player for a bet amount. Validation belongs to
// the round controller; only non-numeric input is retried here.
func (c *Console) PromptBet(p *game.Player) int {
	fmt.Fprintf(c.out, "%s: You have %s.\n", p.Name, c.money(p.Balance()))
	for {
		amount, err := c.readInt("How much would you like to bet on this hand? ")
		if err != nil {
			c.errorf("Please enter a whole dollar amount.")
			continue
		}
		return amount
	}
}

// BetRejected explains why a bet was refused before the re-prompt
func (c *Console) BetRejected(p *game.Player, err error) {
	switch {
	case errors.Is(err, game.ErrBetTooLarge):
		c.errorf("You do not have that much money. Try again.")
	case errors.Is(err, game.ErrBetNotPositive):
		c.errorf("Please place a bet greater than $0.")
	default:
		c.errorf("That bet cannot be placed. Try again.")
	}
}

// PromptHit shows the player's situation and asks hit or stand,
// re-prompting on anything else.
func (c *Console) PromptHit(p *game.Player, upcard deck.Card) bool {
	fmt.Fprintf(c.out, "Dealer is showing %s\n", c.card(upcard))
	fmt.Fprintf(c.out, "%s: Your hand is %s\n", p.Name, c.hand(p.Hand()))
	for {
		answer := strings.TrimSpace(c.readLine(c.styles.Prompt.Render("Would you like to hit ('h') or stand ('s')? ")))
		switch answer {
		case "h":
			return true
		case "s":
			return false
		}
		c.errorf("Excuse me, sir. This is not a valid move. Try again.")
	}
}

// Announce renders a round event to the table
func (c *Console) Announce(ev game.Event) {
	switch e := ev.(type) {
	case game.BetPlacedEvent:
		c.infof("%s bets %s.", e.Player.Name, c.money(e.Player.Bet()))
	case game.HandsDealtEvent:
		fmt.Fprintf(c.out, "Dealer is showing %s\n", c.card(e.DealerUpcard))
		for _, p := range e.Players {
			fmt.Fprintf(c.out, "%s holds %s\n", p.Name, c.hand(p.Hand()))
		}
	case game.BlackjackEvent:
		c.successf("Blackjack! %s wins!", e.Player.Name)
	case game.BustEvent:
		c.warnf("%s busted with %s", e.Player.Name, c.hand(e.Player.Hand()))
	case game.StandEvent:
		c.infof("%s stands at %d", e.Player.Name, e.Score)
	case game.DealerRevealEvent:
		fmt.Fprintf(c.out, "%s\n", c.styles.Dealer.Render(fmt.Sprintf("Dealer reveals his face-down card: %s", e.Card)))
	case game.DealerDrawEvent:
		fmt.Fprintf(c.out, "%s\n", c.styles.Dealer.Render(fmt.Sprintf("Dealer now has %s", e.Hand)))
	case game.DealerBlackjackEvent:
		c.warnf("Dealer has blackjack!")
	case game.DealerBustEvent:
		c.successf("Dealer busted with %s!", e.Hand)
	case game.DealerStandEvent:
		fmt.Fprintf(c.out, "%s\n", c.styles.Dealer.Render(fmt.Sprintf("Dealer stands at %d", e.Score)))
	case game.ResultEvent:
		c.result(e)
	case game.PlayerRetiredEvent:
		c.warnf("%s is out of money and leaves the table.", e.Player.Name)
	}
}

func (c *Console) result(e game.ResultEvent) {
	switch e.Outcome {
	case game.OutcomeDealerBust:
		c.successf("%s wins %s!", e.Player.Name, c.money(e.Payout))
	case game.OutcomeDealerBlackjack:
		c.errorf("Sorry, %s: dealer's blackjack means you lose.", e.Player.Name)
	case game.OutcomeWin:
		c.successf("Congrats, %s, you win %s!", e.Player.Name, c.money(e.Payout))
	case game.OutcomePush:
		c.infof("%s: You pushed and have received your %s bet back.", e.Player.Name, c.money(e.Payout))
	case game.OutcomeLoss:
		c.errorf("Dealer beats %s's %d with %d. Better luck next time.", e.Player.Name, e.PlayerScore, e.DealerScore)
	}
}

func (c *Console) readLine(prompt string) string {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		// Input is gone; there is nothing sensible to re-prompt.
		log.Fatal("input stream closed")
	}
	return c.in.Text()
}

func (c *Console) readInt(prompt string) (int, error) {
	line := strings.TrimSpace(c.readLine(c.styles.Prompt.Render(prompt)))
	return strconv.Atoi(line)
}

func (c *Console) card(card deck.Card) string {
	if card.FaceDown {
		return card.String()
	}
	if card.IsRed() {
		return c.styles.CardRed.Render(card.String())
	}
	return c.styles.CardBlack.Render(card.String())
}

func (c *Console) hand(h *game.Hand) string {
	parts := make([]string, 0, h.Count())
	for _, card := range h.Cards() {
		parts = append(parts, c.card(card))
	}
	return "| " + strings.Join(parts, ", ") + " |"
}

func (c *Console) money(amount int) string {
	return c.styles.Money.Render(fmt.Sprintf("$%d", amount))
}

func (c *Console) infof(format string, args ...any) {
	fmt.Fprintln(c.out, c.styles.Info.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) successf(format string, args ...any) {
	fmt.Fprintln(c.out, c.styles.Success.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) warnf(format string, args ...any) {
	fmt.Fprintln(c.out, c.styles.Warning.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) errorf(format string, args ...any) {
	fmt.Fprintln(c.out, c.styles.Error.Render(fmt.Sprintf(format, args...)))
}
