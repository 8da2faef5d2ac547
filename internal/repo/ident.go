package repo

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/retail_shop/internal/models"
)

func (r *GormRepo) EmailAvailable(ctx context.Context, email string) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.Customer{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return false, err
	}
	return n == 0, nil
}

func freshUID(tx *gorm.DB) (int, error) {
	for {
		uid := rand.Intn(999000) + 1000
		var n int64
		if err := tx.Model(&models.User{}).Where("uid = ?", uid).Count(&n).Error; err != nil {
			return 0, err
		}
		if n == 0 {
			return uid, nil
		}
	}
}

// RegisterCustomer creates the user and customer rows with a fresh uid
// (uid doubles as cid) and returns it.
func (r *GormRepo) RegisterCustomer(ctx context.Context, name, email, passwordHash string) (int, error) {
	var uid int
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := freshUID(tx)
		if err != nil {
			return err
		}
		uid = id

		user := models.User{UID: uid, PasswordHash: passwordHash, Role: "customer"}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		customer := models.Customer{CID: uid, Name: name, Email: email}
		return tx.Create(&customer).Error
	})
	if err != nil {
		return 0, err
	}
	return uid, nil
}

func (r *GormRepo) GetUser(ctx context.Context, uid int) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("uid = ?", uid).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetCustomer(ctx context.Context, cid int) (*models.Customer, error) {
	var customer models.Customer
	if err := r.DB.WithContext(ctx).Where("cid = ?", cid).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// StartSession opens a session with a number unique per customer.
func (r *GormRepo) StartSession(ctx context.Context, cid int, startTime time.Time) (int, error) {
	var sessionNo int
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for {
			cand := rand.Intn(999000) + 1000
			var n int64
			if err := tx.Model(&models.Session{}).Where("cid = ? AND session_no = ?", cid, cand).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				sessionNo = cand
				break
			}
		}
		return tx.Create(&models.Session{CID: cid, SessionNo: sessionNo, StartTime: startTime}).Error
	})
	if err != nil {
		return 0, err
	}
	return sessionNo, nil
}

func (r *GormRepo) EndSession(ctx context.Context, cid, sessionNo int, endTime time.Time) error {
	return r.DB.WithContext(ctx).Model(&models.Session{}).
		Where("cid = ? AND session_no = ?", cid, sessionNo).
		Update("end_time", endTime).Error
}

func (r *GormRepo) RecordView(ctx context.Context, cid, sessionNo, pid int, ts time.Time) error {
	view := models.ProductView{CID: cid, SessionNo: sessionNo, PID: pid, TS: ts}
	return r.DB.WithContext(ctx).Create(&view).Error
}
