package dao

import (
	"context"
	"errors"
	"fmt"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"

	"hr-notification/internal/domain"
	"hr-notification/internal/errs"
)

type employeeDAO struct {
	db *egorm.Component
}

// FindActiveByRoles 查询在职且角色命中的员工，规则解析"全体拍板人"时用
func (dao *employeeDAO) FindActiveByRoles(ctx context.Context, roles []string) ([]Employee, error) {
	if len(roles) == 0 {
		return []Employee{}, nil
	}
	var employees []Employee
	err := dao.db.WithContext(ctx).
		Where("role IN ? AND status = ?", roles, domain.EmployeeStatusActive.String()).
		Find(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("查询员工目录失败: roles=%v %w", roles, err)
	}
	return employees, nil
}

func (dao *employeeDAO) GetByID(ctx context.Context, id int64) (Employee, error) {
	var employee Employee
	err := dao.db.WithContext(ctx).First(&employee, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Employee{}, fmt.Errorf("%w: id=%d", errs.ErrEmployeeNotFound, id)
		}
		return Employee{}, err
	}
	return employee, nil
}

// NewEmployeeDAO 创建员工目录DAO实例
func NewEmployeeDAO(db *egorm.Component) EmployeeDAO {
	return &employeeDAO{db: db}
}

// Employee 员工目录表。HR主应用维护，这里只读。
type Employee struct {
	ID     int64  `gorm:"primaryKey;AUTO_INCREMENT"`
	Name   string `gorm:"type:VARCHAR(128);NOT NULL;comment:'姓名'"`
	Role   string `gorm:"type:ENUM('SUPER_ADMIN','ADMIN','HR','MANAGER','STAFF');NOT NULL;index:idx_role_status,priority:1;comment:'角色'"`
	Status string `gorm:"type:ENUM('ACTIVE','INACTIVE');DEFAULT:'ACTIVE';index:idx_role_status,priority:2;comment:'在职状态'"`
	Ctime  int64
	Utime  int64
}

func (e *Employee) TableName() string {
	return "employee"
}
