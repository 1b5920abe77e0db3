package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"eventfest/internal/domain"
	"eventfest/internal/service"

	"github.com/sirupsen/logrus"
)

// Console runs the interactive menu loop on top of the registries. It
// only parses input and formats output, all decisions live in the
// services.
type Console struct {
	users  *service.UserService
	events *service.EventService
	log    *logrus.Entry

	in  *bufio.Scanner
	out io.Writer
	eof bool
}

func New(l *logrus.Logger, users *service.UserService, events *service.EventService) *Console {
	return &Console{
		users:  users,
		events: events,
		log: l.WithFields(map[string]interface{}{
			"from": "console",
		}),
		in:  bufio.NewScanner(os.Stdin),
		out: os.Stdout,
	}
}

func (c *Console) Run() error {
	for {
		c.printMenu()
		choice := c.prompt("\nSelect an option: ")
		if c.eof {
			return c.in.Err()
		}
		switch choice {
		case "1":
			c.registerEvent()
		case "2":
			c.registerUser()
		case "3":
			c.listUsers()
		case "4":
			c.listEvents()
		case "5":
			c.listUpcoming()
		case "6":
			c.listPast()
		case "7":
			c.enroll()
		case "8":
			c.withdraw()
		case "9":
			c.eventsForUser()
		case "10":
			fmt.Fprintln(c.out, "\nGoodbye, thanks for using EventFest!")
			return nil
		default:
			fmt.Fprintln(c.out, "\nInvalid option, please pick one from the menu.")
		}
	}
}

func (c *Console) printMenu() {
	fmt.Fprintln(c.out, "\n===== MENU =====")
	fmt.Fprintln(c.out, "1. Register event")
	fmt.Fprintln(c.out, "2. Register user")
	fmt.Fprintln(c.out, "3. List users")
	fmt.Fprintln(c.out, "4. List events")
	fmt.Fprintln(c.out, "5. List upcoming events")
	fmt.Fprintln(c.out, "6. List past events")
	fmt.Fprintln(c.out, "7. Enroll in event")
	fmt.Fprintln(c.out, "8. Cancel event enrollment")
	fmt.Fprintln(c.out, "9. List a user's events")
	fmt.Fprintln(c.out, "10. Exit")
}

func (c *Console) prompt(label string) string {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		c.eof = true
		return ""
	}
	return c.in.Text()
}

// promptDate re-prompts until the input parses as dd/mm/yyyy.
func (c *Console) promptDate(label string) time.Time {
	for {
		date, err := time.ParseInLocation(domain.DateLayout, c.prompt(label), time.Local)
		if err == nil || c.eof {
			return date
		}
		fmt.Fprintln(c.out, "Please enter the date as dd/mm/yyyy.")
	}
}

func (c *Console) promptInt(label string) int {
	for {
		n, err := strconv.Atoi(strings.TrimSpace(c.prompt(label)))
		if err == nil && n >= 0 {
			return n
		}
		if c.eof {
			return 0
		}
		fmt.Fprintln(c.out, "Please enter a non-negative number.")
	}
}

func (c *Console) promptFloat(label string) float64 {
	for {
		f, err := strconv.ParseFloat(strings.TrimSpace(c.prompt(label)), 64)
		if err == nil && f >= 0 {
			return f
		}
		if c.eof {
			return 0
		}
		fmt.Fprintln(c.out, "Please enter a non-negative price.")
	}
}

func (c *Console) registerEvent() {
	fmt.Fprintln(c.out, "\n=== Register New Event ===")
	event := domain.Event{
		Name:       c.prompt("Event name: "),
		Address:    c.prompt("Address: "),
		PostalCode: c.prompt("Postal code: "),
		Price:      c.promptFloat("Price: "),
		Category:   c.prompt("Category: "),
		Date:       c.promptDate("Date (dd/mm/yyyy): "),
		// Time-of-day is stored as given, range is not validated.
		Time:        c.prompt("Time (hh:mm): "),
		Description: c.prompt("Description: "),
	}
	if c.eof {
		return
	}
	_, err := c.events.Register(event)
	if err != nil {
		c.log.WithError(err).Error("register event")
		return
	}
	fmt.Fprintln(c.out, "Event saved.")
}

func (c *Console) registerUser() {
	fmt.Fprintln(c.out, "\n=== Register New User ===")
	user := domain.User{
		Name:       c.prompt("Name: "),
		Age:        c.promptInt("Age: "),
		Gender:     c.prompt("Gender (M/F): "),
		Phone:      c.prompt("Phone: "),
		Address:    c.prompt("Address: "),
		PostalCode: c.prompt("Postal code: "),
	}
	if c.eof {
		return
	}
	_, err := c.users.Register(user)
	if err != nil {
		c.log.WithError(err).Error("register user")
		return
	}
	fmt.Fprintln(c.out, "User saved.")
}

func (c *Console) listUsers() {
	fmt.Fprintln(c.out, "\n=== Users ===")
	for _, user := range c.users.List() {
		fmt.Fprintf(c.out, "%s, %d, %s, %s, %s, %s\n",
			user.Name, user.Age, user.Gender, user.Phone, user.Address, user.PostalCode)
	}
}

func (c *Console) listEvents() {
	events, err := c.events.ListAll()
	if err != nil {
		c.log.WithError(err).Error("list events")
		return
	}
	fmt.Fprintln(c.out, "\n=== Events ===")
	for _, event := range events {
		c.printEvent(event)
	}
}

func (c *Console) listUpcoming() {
	events, err := c.events.ListUpcoming()
	if err != nil {
		c.log.WithError(err).Error("list upcoming events")
		return
	}
	if len(events) == 0 {
		fmt.Fprintln(c.out, "There are no upcoming events.")
		return
	}
	fmt.Fprintln(c.out, "\n=== Upcoming Events ===")
	for _, event := range events {
		c.printEvent(event)
	}
}

func (c *Console) listPast() {
	events, err := c.events.ListPast()
	if err != nil {
		c.log.WithError(err).Error("list past events")
		return
	}
	if len(events) == 0 {
		fmt.Fprintln(c.out, "There are no past events.")
		return
	}
	fmt.Fprintln(c.out, "\n=== Past Events ===")
	for _, event := range events {
		c.printEvent(event)
	}
}

func (c *Console) printEvent(event domain.Event) {
	fmt.Fprintf(c.out, "%s | %s %s | %.2f | %s | %s %s | %s\n",
		event.Name, event.Address, event.PostalCode, event.Price,
		event.Category, event.Date.Format(domain.DateLayout), event.Time,
		event.Description)
	if len(event.Participants) > 0 {
		fmt.Fprintf(c.out, "  participants: %s\n", strings.Join(event.Participants, ", "))
	}
}

func (c *Console) enroll() {
	fmt.Fprintln(c.out, "\n=== Enroll in Event ===")
	eventName := c.prompt("Event name: ")
	userName := c.prompt("User name: ")
	err := c.events.Enroll(eventName, userName)
	if err != nil {
		c.report(err, eventName, userName)
		return
	}
	fmt.Fprintf(c.out, "%s is now enrolled in %s.\n", strings.TrimSpace(userName), strings.TrimSpace(eventName))
}

func (c *Console) withdraw() {
	fmt.Fprintln(c.out, "\n=== Cancel Event Enrollment ===")
	eventName := c.prompt("Event name: ")
	userName := c.prompt("User name: ")
	err := c.events.Withdraw(eventName, userName)
	if err != nil {
		c.report(err, eventName, userName)
		return
	}
	fmt.Fprintf(c.out, "%s cancelled the enrollment in %s.\n", strings.TrimSpace(userName), strings.TrimSpace(eventName))
}

func (c *Console) eventsForUser() {
	userName := c.prompt("\nUser name to list events for: ")
	names, err := c.events.EventsForUser(userName)
	if err != nil {
		c.log.WithError(err).Error("list user events")
		return
	}
	if len(names) == 0 {
		fmt.Fprintf(c.out, "There are no events for user %s.\n", strings.TrimSpace(userName))
		return
	}
	fmt.Fprintf(c.out, "\n=== Events of %s ===\n", strings.TrimSpace(userName))
	for _, name := range names {
		fmt.Fprintln(c.out, name)
	}
}

// report translates the services' reportable outcomes into messages;
// anything else is a store failure worth logging.
func (c *Console) report(err error, eventName, userName string) {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		fmt.Fprintf(c.out, "Event %s not found.\n", strings.TrimSpace(eventName))
	case errors.Is(err, service.ErrUserNotFound):
		fmt.Fprintf(c.out, "User %s not found.\n", strings.TrimSpace(userName))
	case errors.Is(err, service.ErrNotParticipating):
		fmt.Fprintf(c.out, "User %s is not participating in event %s.\n",
			strings.TrimSpace(userName), strings.TrimSpace(eventName))
	default:
		c.log.WithError(err).Error("operation failed")
	}
}
