package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"luggagebill/internal/domain"
	"luggagebill/internal/domain/models"
)

var customerCols = []string{"id", "fullname", "email", "address", "next_of_kin", "next_of_kin_phonenumber", "created", "updated"}

func TestCustomerListSearchesAndPaginates(t *testing.T) {
	db, mock := newMock(t)
	repo := CustomerRepository{DB: db}

	mock.ExpectQuery(`FROM customers WHERE \(fullname LIKE \? OR next_of_kin LIKE \?\) ORDER BY fullname ASC, id ASC LIMIT \? OFFSET \?`).
		WithArgs("%ada%", "%ada%", 10, 10).
		WillReturnRows(sqlmock.NewRows(customerCols).
			AddRow(1, "Ada Obi", "ada@example.com", "12 Marina", "Ngozi Obi", "08031234567", fixedTime, fixedTime))

	got, err := repo.List(context.Background(), ListFilter{Query: " ada ", Page: domain.Pagination{Page: 2, PageSize: 10}})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 || got[0].Fullname != "Ada Obi" || got[0].NextOfKinPhoneNumber != "08031234567" {
		t.Fatalf("unexpected customers: %+v", got)
	}
}

func TestCustomerCreateDuplicateIsConflict(t *testing.T) {
	db, mock := newMock(t)
	repo := CustomerRepository{DB: db}

	mock.ExpectExec(`INSERT INTO customers`).
		WithArgs("Ada Obi", "ada@example.com", "12 Marina", "Ngozi Obi", "08031234567", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'Ada Obi'"})

	_, err := repo.Create(context.Background(), models.Customer{
		Fullname: "Ada Obi", Email: "ada@example.com", Address: "12 Marina",
		NextOfKin: "Ngozi Obi", NextOfKinPhoneNumber: "08031234567",
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestCustomerCreateSetsID(t *testing.T) {
	db, mock := newMock(t)
	repo := CustomerRepository{DB: db}

	mock.ExpectExec(`INSERT INTO customers`).WillReturnResult(sqlmock.NewResult(7, 1))

	c, err := repo.Create(context.Background(), models.Customer{Fullname: "Ada Obi"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if c.ID != 7 || c.Created.IsZero() || !c.Created.Equal(c.Updated) {
		t.Fatalf("unexpected created customer: %+v", c)
	}
}

func TestCustomerGetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := CustomerRepository{DB: db}

	mock.ExpectQuery(`FROM customers WHERE id=\?`).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByID(context.Background(), 99); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCustomerDeleteMissingRow(t *testing.T) {
	db, mock := newMock(t)
	repo := CustomerRepository{DB: db}

	mock.ExpectExec(`DELETE FROM customers WHERE id=\?`).WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 5); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
