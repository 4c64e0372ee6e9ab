package service

import (
	"context"
	"os"

	"github.com/haierkeys/file-cms-service/internal/domain"
)

// memDocRepo 内存文档仓库，测试用
type memDocRepo struct {
	docs     map[string][]byte
	writeErr error
	deleted  []string
}

func newMemDocRepo() *memDocRepo {
	return &memDocRepo{docs: map[string][]byte{}}
}

func (m *memDocRepo) List(ctx context.Context) ([]string, error) {
	var names []string
	for name := range m.docs {
		names = append(names, name)
	}
	return names, nil
}

func (m *memDocRepo) Read(ctx context.Context, name string) ([]byte, error) {
	content, ok := m.docs[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return content, nil
}

func (m *memDocRepo) Write(ctx context.Context, name string, content []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.docs[name] = content
	return nil
}

func (m *memDocRepo) Exists(ctx context.Context, name string) bool {
	_, ok := m.docs[name]
	return ok
}

func (m *memDocRepo) Delete(ctx context.Context, name string) error {
	delete(m.docs, name)
	m.deleted = append(m.deleted, name)
	return nil
}

// memLedgerRepo 内存台账仓库，测试用
type memLedgerRepo struct {
	ledger   domain.Ledger
	archives map[string][]byte

	// deleteFails 中的归档删除时返回错误
	deleteFails map[string]error
}

func newMemLedgerRepo() *memLedgerRepo {
	return &memLedgerRepo{
		ledger:   domain.Ledger{},
		archives: map[string][]byte{},
	}
}

func (m *memLedgerRepo) Load(ctx context.Context) (domain.Ledger, error) {
	out := domain.Ledger{}
	for name, entries := range m.ledger {
		out[name] = append([]domain.HistoryEntry{}, entries...)
	}
	return out, nil
}

func (m *memLedgerRepo) Save(ctx context.Context, l domain.Ledger) error {
	m.ledger = l
	return nil
}

func (m *memLedgerRepo) WriteArchive(ctx context.Context, file string, content []byte) error {
	m.archives[file] = content
	return nil
}

func (m *memLedgerRepo) ReadArchive(ctx context.Context, file string) ([]byte, error) {
	content, ok := m.archives[file]
	if !ok {
		return nil, os.ErrNotExist
	}
	return content, nil
}

func (m *memLedgerRepo) DeleteArchive(ctx context.Context, file string) error {
	if err, ok := m.deleteFails[file]; ok {
		return err
	}
	delete(m.archives, file)
	return nil
}

// memUserRepo 内存用户仓库，测试用
type memUserRepo struct {
	creds domain.Credentials
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{creds: domain.Credentials{}}
}

func (m *memUserRepo) Load(ctx context.Context) (domain.Credentials, error) {
	out := domain.Credentials{}
	for k, v := range m.creds {
		out[k] = v
	}
	return out, nil
}

func (m *memUserRepo) Save(ctx context.Context, c domain.Credentials) error {
	m.creds = c
	return nil
}
