package lifecycle

import (
	"context"
	"errors"
	"time"

	"creditflow-backend/internal/domain/ledger"
	domain "creditflow-backend/internal/domain/loan"
	domainProfile "creditflow-backend/internal/domain/profile"
	"creditflow-backend/internal/domain/scoring"
	"creditflow-backend/internal/domain/uow"
	"creditflow-backend/pkg/fixedpoint"

	"gorm.io/gorm"
)

// Usecase drives the application/loan state machine:
// pending → approved → disbursed, then repayment until the balance hits 0.
// Every mutating operation validates all preconditions inside one
// transaction with the target row locked, so either all of its writes land
// or none do.
type Usecase struct {
	apps   domain.ApplicationRepository
	loans  domain.ActiveLoanRepository
	ledger ledger.Repository
	uow    uow.UnitOfWork
}

func NewUsecase(apps domain.ApplicationRepository, loans domain.ActiveLoanRepository, stats ledger.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{apps: apps, loans: loans, ledger: stats, uow: tx}
}

// Apply files a new application. The borrower must have a registered profile
// with a credit score at or above the application floor; below it the
// application is rejected outright, never queued. The risk score and
// interest rate are snapshotted from the cheap scoring path at this moment
// and never recomputed.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*ApplicationDTO, error) {
	if in.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if in.TermMonths < domain.MinTermMonths || in.TermMonths > domain.MaxTermMonths {
		return nil, domain.ErrInvalidTerm
	}

	var dto *ApplicationDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Profiles.GetByBorrowerID(ctx, in.BorrowerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainProfile.ErrNotFound
			}
			return err
		}
		if p.CreditScore < scoring.ApplicationScoreFloor {
			return domain.ErrInsufficientScore
		}

		a := &domain.Application{
			BorrowerID:      in.BorrowerID,
			Amount:          in.Amount,
			Purpose:         in.Purpose,
			TermMonths:      in.TermMonths,
			RiskScore:       p.CreditScore,
			InterestRateBps: scoring.RateBpsFor(p.CreditScore),
			Status:          domain.StatusPending,
			AppliedAt:       time.Now().UTC(),
		}
		if err := r.Applications.Create(ctx, a); err != nil {
			return err
		}
		dto = toApplicationDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Approve moves a pending application to approved. Owner-only.
func (u *Usecase) Approve(ctx context.Context, callerIsOwner bool, id uint64) (*ApplicationDTO, error) {
	if !callerIsOwner {
		return nil, domain.ErrUnauthorized
	}
	var dto *ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, id, func(r uow.Repos, a *domain.Application) error {
		if a.Status != domain.StatusPending {
			return domain.ErrInvalidTransition
		}
		a.Status = domain.StatusApproved
		a.ApprovedAt = time.Now().UTC()
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		dto = toApplicationDTO(a)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// Disburse moves an approved application to disbursed: it computes the
// monthly installment from the snapshotted amount/rate/term, creates the
// active loan with the full principal outstanding, and bumps the ledger
// aggregates — all in one transaction. The application row is kept for
// audit; the active loan only shares its id.
func (u *Usecase) Disburse(ctx context.Context, callerIsOwner bool, id uint64) (*ActiveLoanDTO, error) {
	if !callerIsOwner {
		return nil, domain.ErrUnauthorized
	}
	var dto *ActiveLoanDTO
	err := u.uow.WithinApplicationTx(ctx, id, func(r uow.Repos, a *domain.Application) error {
		if a.Status != domain.StatusApproved {
			return domain.ErrInvalidTransition
		}
		if _, err := r.Loans.GetByID(ctx, a.ID); err == nil {
			return domain.ErrAlreadyExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		l := &domain.ActiveLoan{
			ID:                 a.ID,
			BorrowerID:         a.BorrowerID,
			PrincipalAmount:    a.Amount,
			OutstandingBalance: a.Amount,
			InterestRateBps:    a.InterestRateBps,
			MonthlyPayment:     fixedpoint.MonthlyPayment(a.Amount, a.InterestRateBps, a.TermMonths),
			TermMonths:         a.TermMonths,
			DisbursedAt:        time.Now().UTC(),
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}

		a.Status = domain.StatusDisbursed
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		stats, err := r.Ledger.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		stats.TotalLoansIssued++
		stats.TotalAmountDisbursed += a.Amount
		if err := r.Ledger.Save(ctx, stats); err != nil {
			return err
		}

		dto = toActiveLoanDTO(l)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// RecordPayment applies a payment from the loan's own borrower. A payment
// against a fully repaid loan is rejected, not a no-op. Overpayment clamps
// the balance at zero; the excess is discarded. Every accepted call counts
// as exactly one payment made, whatever the amount.
func (u *Usecase) RecordPayment(ctx context.Context, callerID string, id uint64, amount int64) (*PaymentDTO, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	var dto *PaymentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if l.BorrowerID != callerID {
			return domain.ErrUnauthorized
		}
		if l.OutstandingBalance == 0 {
			return domain.ErrInvalidAmount
		}

		balance := l.OutstandingBalance - amount
		if balance < 0 {
			balance = 0
		}
		l.OutstandingBalance = balance
		l.PaymentsMade++
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = &PaymentDTO{LoanID: l.ID, OutstandingBalance: l.OutstandingBalance, PaymentsMade: l.PaymentsMade}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) GetApplication(ctx context.Context, id uint64) (*ApplicationDTO, error) {
	a, err := u.apps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toApplicationDTO(a), nil
}

func (u *Usecase) GetActiveLoan(ctx context.Context, id uint64) (*ActiveLoanDTO, error) {
	l, err := u.loans.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toActiveLoanDTO(l), nil
}

func (u *Usecase) GetStats(ctx context.Context) (*StatsDTO, error) {
	s, err := u.ledger.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &StatsDTO{
		TotalLoansIssued:     s.TotalLoansIssued,
		TotalAmountDisbursed: s.TotalAmountDisbursed,
		ModelVersion:         s.ModelVersion,
	}, nil
}

func toApplicationDTO(a *domain.Application) *ApplicationDTO {
	dto := &ApplicationDTO{
		ID:              a.ID,
		BorrowerID:      a.BorrowerID,
		Amount:          a.Amount,
		Purpose:         a.Purpose,
		TermMonths:      a.TermMonths,
		RiskScore:       a.RiskScore,
		InterestRateBps: a.InterestRateBps,
		Status:          string(a.Status),
		AppliedAt:       a.AppliedAt,
	}
	if !a.ApprovedAt.IsZero() {
		t := a.ApprovedAt
		dto.ApprovedAt = &t
	}
	return dto
}

func toActiveLoanDTO(l *domain.ActiveLoan) *ActiveLoanDTO {
	return &ActiveLoanDTO{
		ID:                 l.ID,
		BorrowerID:         l.BorrowerID,
		PrincipalAmount:    l.PrincipalAmount,
		OutstandingBalance: l.OutstandingBalance,
		InterestRateBps:    l.InterestRateBps,
		MonthlyPayment:     l.MonthlyPayment,
		PaymentsMade:       l.PaymentsMade,
		PaymentsMissed:     l.PaymentsMissed,
		TermMonths:         l.TermMonths,
		DisbursedAt:        l.DisbursedAt,
	}
}
