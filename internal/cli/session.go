// Package cli implements the numbered-menu terminal front end of the bank.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/benx421/simple-banking/internal/card"
	"github.com/benx421/simple-banking/internal/service"
	"github.com/google/uuid"
)

// Services bundles the operations a session drives.
type Services struct {
	Issuer        service.Issuer
	Authenticator service.Authenticator
	Teller        service.Teller
	Transferrer   service.Transferrer
	Closer        service.Closer
}

type action func(s *Session, ctx context.Context) error

var actions = map[Command]action{
	CommandCreate:   (*Session).create,
	CommandLogin:    (*Session).login,
	CommandBalance:  (*Session).balance,
	CommandIncome:   (*Session).income,
	CommandTransfer: (*Session).transfer,
	CommandClose:    (*Session).closeAccount,
	CommandLogout:   (*Session).logout,
	CommandExit:     (*Session).exit,
}

type scanned struct {
	text string
	err  error
}

// Session is one cardholder's conversation with the bank over a pair of
// text streams.
type Session struct {
	id       uuid.UUID
	in       io.Reader
	out      io.Writer
	services Services
	logger   *slog.Logger

	state State
	card  string
	pin   string

	lines chan scanned
	done  chan struct{}
}

// NewSession creates a logged out session reading selections from in and
// writing menus to out.
func NewSession(in io.Reader, out io.Writer, services Services, logger *slog.Logger) *Session {
	id := uuid.New()
	return &Session{
		id:       id,
		in:       in,
		out:      out,
		services: services,
		logger:   logger.With("session_id", id.String()),
		state:    StateLoggedOut,
	}
}

// ID returns the session identifier attached to every log line.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Run shows menus and dispatches selections until the cardholder exits,
// input ends or ctx is cancelled. End of input is a normal termination.
func (s *Session) Run(ctx context.Context) error {
	s.lines = make(chan scanned)
	s.done = make(chan struct{})
	defer close(s.done)
	go s.scan()

	s.logger.Info("session started")

	for s.state != StateTerminated {
		current := mainMenu
		if s.state == StateLoggedIn {
			current = accountMenu
		}

		token, err := s.prompt(ctx, current.prompt)
		if err != nil {
			return s.stop(err)
		}

		cmd := current.lookup(token)
		act, ok := actions[cmd]
		if !ok {
			s.println(msgInvalidInput)
			continue
		}

		s.logger.Debug("command selected", "command", cmd.String(), "state", s.state.String())
		if err := act(s, ctx); err != nil {
			return s.stop(err)
		}
	}

	s.logger.Info("session ended")
	return nil
}

// stop terminates the session, treating end of input as a clean exit.
func (s *Session) stop(err error) error {
	s.state = StateTerminated
	s.card, s.pin = "", ""

	if errors.Is(err, io.EOF) {
		s.logger.Info("session ended", "reason", "end of input")
		return nil
	}

	s.logger.Warn("session aborted", "error", err)
	return err
}

func (s *Session) scan() {
	defer close(s.lines)

	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		select {
		case s.lines <- scanned{text: strings.TrimSpace(scanner.Text())}:
		case <-s.done:
			return
		}
	}

	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	select {
	case s.lines <- scanned{err: err}:
	case <-s.done:
	}
}

func (s *Session) prompt(ctx context.Context, text string) (string, error) {
	fmt.Fprint(s.out, text)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		if line.err != nil {
			return "", fmt.Errorf("failed to read input: %w", line.err)
		}
		return line.text, nil
	}
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Session) create(ctx context.Context) error {
	account, err := s.services.Issuer.Issue(ctx)
	if err != nil {
		s.report(err)
		return nil
	}

	s.logger.Info("account created", "card", card.Mask(account.Number))
	s.println(fmt.Sprintf(msgCardCreated, account.Number, account.PIN))
	return nil
}

func (s *Session) login(ctx context.Context) error {
	number, err := s.prompt(ctx, promptCardNumber)
	if err != nil {
		return err
	}
	pin, err := s.prompt(ctx, promptPIN)
	if err != nil {
		return err
	}

	if err := s.services.Authenticator.Authenticate(ctx, number, pin); err != nil {
		s.report(err)
		return nil
	}

	s.state = StateLoggedIn
	s.card, s.pin = number, pin
	s.logger.Info("cardholder logged in", "card", card.Mask(number))
	s.println(msgLoggedIn)
	return nil
}

func (s *Session) balance(ctx context.Context) error {
	balance, err := s.services.Teller.Balance(ctx, s.card)
	if err != nil {
		s.report(err)
		return nil
	}

	s.println(fmt.Sprintf(msgBalance, balance))
	return nil
}

func (s *Session) income(ctx context.Context) error {
	input, err := s.prompt(ctx, promptIncome)
	if err != nil {
		return err
	}

	amount, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		s.println(msgInvalidInput)
		return nil
	}

	if err := s.services.Teller.Deposit(ctx, s.card, amount); err != nil {
		s.report(err)
		return nil
	}

	s.logger.Info("income added", "card", card.Mask(s.card), "amount", amount)
	s.println(msgIncomeAdded)
	return nil
}

func (s *Session) transfer(ctx context.Context) error {
	target, err := s.prompt(ctx, promptTransferCard)
	if err != nil {
		return err
	}

	if err := s.services.Transferrer.CheckTarget(ctx, s.card, target); err != nil {
		s.report(err)
		return nil
	}

	input, err := s.prompt(ctx, promptTransferFunds)
	if err != nil {
		return err
	}

	amount, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		s.println(msgInvalidInput)
		return nil
	}

	if err := s.services.Transferrer.Transfer(ctx, s.card, target, amount); err != nil {
		s.report(err)
		return nil
	}

	s.logger.Info("transfer completed",
		"from", card.Mask(s.card),
		"to", card.Mask(target),
		"amount", amount,
	)
	s.println(msgTransferDone)
	return nil
}

// closeAccount re-proves the PIN held by the session and ends the login.
func (s *Session) closeAccount(ctx context.Context) error {
	if err := s.services.Closer.Close(ctx, s.card, s.pin); err != nil {
		s.report(err)
		return nil
	}

	s.logger.Info("account closed", "card", card.Mask(s.card))
	s.endLogin()
	s.println(msgAccountClosed)
	return nil
}

func (s *Session) logout(context.Context) error {
	s.logger.Info("cardholder logged out", "card", card.Mask(s.card))
	s.endLogin()
	s.println(msgLoggedOut)
	return nil
}

func (s *Session) exit(context.Context) error {
	s.state = StateTerminated
	s.card, s.pin = "", ""
	s.println(msgBye)
	return nil
}

func (s *Session) endLogin() {
	s.state = StateLoggedOut
	s.card, s.pin = "", ""
}

// report prints the message for a failed operation. A logged in session
// whose account has disappeared is logged out.
func (s *Session) report(err error) {
	switch service.Code(err) {
	case service.ErrCodeInvalidCredentials:
		s.println(msgLoginFailed)
	case service.ErrCodeSameAccount:
		s.println(msgSameAccount)
	case service.ErrCodeInvalidTargetCard:
		s.println(msgBadChecksum)
	case service.ErrCodeTargetNotFound:
		s.println(msgNoSuchCard)
	case service.ErrCodeInsufficientFunds:
		s.println(msgNotEnoughMoney)
	case service.ErrCodeInvalidAmount:
		s.println(msgInvalidInput)
	case service.ErrCodeAccountNotFound:
		s.logger.Warn("account vanished during session", "card", card.Mask(s.card))
		if s.state == StateLoggedIn {
			s.endLogin()
		}
		s.println(msgAccountGone)
	default:
		s.logger.Error("operation failed", "error", err)
		s.println(msgSomethingFailed)
	}
}
