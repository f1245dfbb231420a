package cli

// Command is a menu selection understood by the session.
type Command int

// Menu commands
const (
	CommandUnknown Command = iota
	CommandCreate
	CommandLogin
	CommandBalance
	CommandIncome
	CommandTransfer
	CommandClose
	CommandLogout
	CommandExit
)

func (c Command) String() string {
	switch c {
	case CommandCreate:
		return "create"
	case CommandLogin:
		return "login"
	case CommandBalance:
		return "balance"
	case CommandIncome:
		return "income"
	case CommandTransfer:
		return "transfer"
	case CommandClose:
		return "close"
	case CommandLogout:
		return "logout"
	case CommandExit:
		return "exit"
	default:
		return "unknown"
	}
}

// State is the position of a session in its lifecycle.
type State int

// Session states
const (
	StateLoggedOut State = iota
	StateLoggedIn
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateLoggedOut:
		return "logged_out"
	case StateLoggedIn:
		return "logged_in"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// menu maps the tokens a screen accepts to commands.
type menu struct {
	prompt   string
	commands map[string]Command
}

var mainMenu = menu{
	prompt: "1. Create an account\n2. Log into account\n0. Exit\n>",
	commands: map[string]Command{
		"1": CommandCreate,
		"2": CommandLogin,
		"0": CommandExit,
	},
}

var accountMenu = menu{
	prompt: "1. Balance\n2. Add income\n3. Do transfer\n4. Close account\n5. Log out\n0. Exit\n>",
	commands: map[string]Command{
		"1": CommandBalance,
		"2": CommandIncome,
		"3": CommandTransfer,
		"4": CommandClose,
		"5": CommandLogout,
		"0": CommandExit,
	},
}

func (m menu) lookup(token string) Command {
	if cmd, ok := m.commands[token]; ok {
		return cmd
	}
	return CommandUnknown
}

// Messages printed to the cardholder.
const (
	msgCardCreated      = "\nYour card has been created\nYour card number:\n%s\nYour card PIN:\n%s\n"
	msgLoginFailed      = "\nWrong card number or PIN!\n"
	msgLoggedIn         = "\nYou have successfully logged in!\n"
	msgLoggedOut        = "\nYou have successfully logged out!\n"
	msgBye              = "\nBye!\n"
	msgInvalidInput     = "\nInvalid input. Please try again.\n"
	msgBalance          = "\nBalance: %d\n"
	msgIncomeAdded      = "Income was added!\n"
	msgSameAccount      = "\nYou can't transfer money to the same account!\n"
	msgBadChecksum      = "\nProbably you made a mistake in the card number. Please try again!\n"
	msgNoSuchCard       = "\nSuch a card does not exist.\n"
	msgTransferDone     = "Success!\n"
	msgNotEnoughMoney   = "Not enough money!\n"
	msgAccountClosed    = "\nThe account has been closed!\n"
	msgAccountGone      = "\nThe account no longer exists.\n"
	msgSomethingFailed  = "\nSomething went wrong. Please try again later.\n"
	promptCardNumber    = "\nEnter your card number:\n>"
	promptPIN           = "Enter your PIN:\n>"
	promptIncome        = "\nEnter income:\n>"
	promptTransferCard  = "Transfer\nEnter card number:\n>"
	promptTransferFunds = "\nEnter how much money you want to transfer:\n>"
)
