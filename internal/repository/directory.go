package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"

	"hr-notification/internal/domain"
	"hr-notification/internal/repository/cache"
	"hr-notification/internal/repository/dao"
)

// directoryRepository 员工目录仓储实现。
// 拍板人名单读穿本地缓存，定时任务调 LoadCache 整体重载。
type directoryRepository struct {
	dao            dao.EmployeeDAO
	directoryCache cache.DirectoryCache
	logger         *elog.Component
}

func (repo *directoryRepository) FindPrivilegedActive(ctx context.Context) ([]domain.Employee, error) {
	employees, err := repo.directoryCache.GetPrivileged(ctx)
	if err == nil {
		return employees, nil
	}
	if !errors.Is(err, cache.ErrKeyNotFound) {
		repo.logger.Warn("读取目录缓存失败", elog.FieldErr(err))
	}

	employees, err = repo.findPrivilegedFromDB(ctx)
	if err != nil {
		return nil, err
	}
	if err := repo.directoryCache.SetPrivileged(ctx, employees); err != nil {
		repo.logger.Warn("回填目录缓存失败", elog.FieldErr(err))
	}
	return employees, nil
}

func (repo *directoryRepository) GetEmployee(ctx context.Context, id int64) (domain.Employee, error) {
	entity, err := repo.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Employee{}, err
	}
	return repo.toDomain(entity), nil
}

func (repo *directoryRepository) LoadCache(ctx context.Context) error {
	employees, err := repo.findPrivilegedFromDB(ctx)
	if err != nil {
		return err
	}
	return repo.directoryCache.SetPrivileged(ctx, employees)
}

func (repo *directoryRepository) findPrivilegedFromDB(ctx context.Context) ([]domain.Employee, error) {
	roles := slice.Map(domain.PrivilegedRoles(), func(_ int, src domain.Role) string {
		return src.String()
	})
	entities, err := repo.dao.FindActiveByRoles(ctx, roles)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Employee) domain.Employee {
		return repo.toDomain(src)
	}), nil
}

func (repo *directoryRepository) toDomain(e dao.Employee) domain.Employee {
	return domain.Employee{
		ID:     e.ID,
		Name:   e.Name,
		Role:   domain.Role(e.Role),
		Status: domain.EmployeeStatus(e.Status),
	}
}

// NewDirectoryRepository 创建员工目录仓储实例
func NewDirectoryRepository(d dao.EmployeeDAO, directoryCache cache.DirectoryCache) DirectoryRepository {
	return &directoryRepository{
		dao:            d,
		directoryCache: directoryCache,
		logger:         elog.DefaultLogger,
	}
}
