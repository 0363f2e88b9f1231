package club

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"campus_club_server/internal/dao/mysql/repository"
	"campus_club_server/internal/dto/request"
	"campus_club_server/internal/model"
	"campus_club_server/pkg/constants"
	"campus_club_server/pkg/enum/club/club_category_enum"
	"campus_club_server/pkg/enum/club/club_status_enum"
	"campus_club_server/pkg/enum/membership/club_role_enum"
	"campus_club_server/pkg/errorx"
)

// ==================== 测试替身 ====================

// fakeClubRepo 内存社团仓库
type fakeClubRepo struct {
	mu     sync.Mutex
	nextId uint
	clubs  map[uint]*model.Club
}

func newFakeClubRepo() *fakeClubRepo {
	return &fakeClubRepo{nextId: 1, clubs: make(map[uint]*model.Club)}
}

func (f *fakeClubRepo) FindById(id uint) (*model.Club, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if club, ok := f.clubs[id]; ok {
		copied := *club
		return &copied, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "club not found")
}

func (f *fakeClubRepo) FindByIdWithRelations(id uint) (*model.Club, error) {
	return f.FindById(id)
}

func (f *fakeClubRepo) Search(name, status string, page, limit int) ([]model.Club, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []model.Club
	for _, club := range f.clubs {
		if name != "" && !strings.Contains(strings.ToLower(club.Name), strings.ToLower(name)) {
			continue
		}
		if status != "" && club.Status != status {
			continue
		}
		matched = append(matched, *club)
	}
	total := int64(len(matched))
	start := (page - 1) * limit
	if start >= len(matched) {
		return []model.Club{}, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeClubRepo) Create(club *model.Club) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	club.ID = f.nextId
	club.CreatedAt = time.Now()
	f.nextId++
	copied := *club
	f.clubs[club.ID] = &copied
	return nil
}

func (f *fakeClubRepo) Updates(id uint, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	club, ok := f.clubs[id]
	if !ok {
		return errorx.New(errorx.CodeNotFound, "club not found")
	}
	if v, ok := fields["name"]; ok {
		club.Name = v.(string)
	}
	if v, ok := fields["description"]; ok {
		club.Description = v.(string)
	}
	if v, ok := fields["category"]; ok {
		club.Category = v.(string)
	}
	if v, ok := fields["meeting_location"]; ok {
		club.MeetingLocation = v.(string)
	}
	if v, ok := fields["image"]; ok {
		club.Image = v.(string)
	}
	return nil
}

func (f *fakeClubRepo) UpdateStatus(id uint, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if club, ok := f.clubs[id]; ok {
		club.Status = status
		return nil
	}
	return errorx.New(errorx.CodeNotFound, "club not found")
}

func (f *fakeClubRepo) SoftDeleteById(id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.clubs, id)
	return nil
}

// fakeMembershipRepo 只覆盖社团生命周期用到的成员操作
// findErr 非空时 FindByUserAndClub 直接返回该错误，用于模拟存储故障
type fakeMembershipRepo struct {
	mu      sync.Mutex
	nextId  uint
	members map[uint]*model.Membership
	findErr error
}

func newFakeMembershipRepo() *fakeMembershipRepo {
	return &fakeMembershipRepo{nextId: 1, members: make(map[uint]*model.Membership)}
}

func (f *fakeMembershipRepo) FindByUserAndClub(userUuid string, clubId uint) (*model.Membership, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, m := range f.members {
		if m.UserUuid == userUuid && m.ClubId == clubId {
			copied := *m
			return &copied, nil
		}
	}
	return nil, errorx.New(errorx.CodeNotFound, "membership not found")
}

func (f *fakeMembershipRepo) FindByUser(userUuid string) ([]model.Membership, error) {
	return nil, nil
}

func (f *fakeMembershipRepo) FindByClubPaged(clubId uint, page, limit int) ([]model.Membership, int64, error) {
	return nil, 0, nil
}

func (f *fakeMembershipRepo) Create(member *model.Membership) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	member.ID = f.nextId
	f.nextId++
	copied := *member
	f.members[member.ID] = &copied
	return nil
}

func (f *fakeMembershipRepo) UpdateRole(userUuid string, clubId uint, role string) error { return nil }
func (f *fakeMembershipRepo) Delete(userUuid string, clubId uint) error                  { return nil }

func (f *fakeMembershipRepo) DeleteByClubId(clubId uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, m := range f.members {
		if m.ClubId == clubId {
			delete(f.members, id)
		}
	}
	return nil
}

// fakeActivityRepo 只覆盖级联删除
type fakeActivityRepo struct {
	mu         sync.Mutex
	activities map[uint]*model.Activity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{activities: make(map[uint]*model.Activity)}
}

func (f *fakeActivityRepo) FindById(id uint) (*model.Activity, error) {
	return nil, errorx.New(errorx.CodeNotFound, "activity not found")
}
func (f *fakeActivityRepo) FindByClubPaged(clubId uint, page, limit int) ([]model.Activity, int64, error) {
	return nil, 0, nil
}
func (f *fakeActivityRepo) FindUpcoming(now time.Time, page, limit int) ([]model.Activity, int64, error) {
	return nil, 0, nil
}
func (f *fakeActivityRepo) Create(activity *model.Activity) error                { return nil }
func (f *fakeActivityRepo) Updates(id uint, fields map[string]interface{}) error { return nil }
func (f *fakeActivityRepo) UpdateStatus(id uint, status string) error            { return nil }
func (f *fakeActivityRepo) Delete(id uint) error                                 { return nil }

func (f *fakeActivityRepo) DeleteByClubId(clubId uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, a := range f.activities {
		if a.ClubId == clubId {
			delete(f.activities, id)
		}
	}
	return nil
}

// syncCache 同步执行任务的缓存替身
type syncCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newSyncCache() *syncCache { return &syncCache{data: make(map[string]string)} }

func (c *syncCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *syncCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data[key], nil
}

func (c *syncCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *syncCache) DeleteByPattern(ctx context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]string)
	return nil
}

func (c *syncCache) SubmitTask(action func()) { action() }

// capturePublisher 记录发布的事件
type capturePublisher struct {
	mu     sync.Mutex
	topics []string
}

func (p *capturePublisher) Publish(topic string, payload map[string]any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
}

func (p *capturePublisher) Close() error { return nil }

func (p *capturePublisher) published(topic string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, t := range p.topics {
		if t == topic {
			return true
		}
	}
	return false
}

// ==================== 测试装配 ====================

type testEnv struct {
	svc        *clubService
	clubRepo   *fakeClubRepo
	memberRepo *fakeMembershipRepo
	publisher  *capturePublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	clubRepo := newFakeClubRepo()
	memberRepo := newFakeMembershipRepo()
	activityRepo := newFakeActivityRepo()
	repos := &repository.Repositories{
		Club:       clubRepo,
		Membership: memberRepo,
		Activity:   activityRepo,
	}
	publisher := &capturePublisher{}
	return &testEnv{
		svc:        NewClubService(repos, newSyncCache(), publisher),
		clubRepo:   clubRepo,
		memberRepo: memberRepo,
		publisher:  publisher,
	}
}

// ==================== 用例 ====================

func TestCreateClubSeedsAdminMembership(t *testing.T) {
	env := newTestEnv(t)

	rsp, err := env.svc.CreateClub("U_creator", request.CreateClubRequest{
		Name:        "Chess Club",
		Description: "We play chess",
		Category:    club_category_enum.ACADEMIC,
	})
	if err != nil {
		t.Fatalf("CreateClub: %v", err)
	}
	if rsp.Status != club_status_enum.ACTIVE {
		t.Fatalf("status = %s, want ACTIVE", rsp.Status)
	}

	member, err := env.memberRepo.FindByUserAndClub("U_creator", rsp.Id)
	if err != nil {
		t.Fatalf("creator membership missing: %v", err)
	}
	if member.Role != club_role_enum.ADMIN {
		t.Fatalf("creator role = %s, want ADMIN", member.Role)
	}
	if !env.publisher.published(constants.TopicClubCreated) {
		t.Fatalf("expected %s event", constants.TopicClubCreated)
	}
}

func TestCreateClubRejectsUnknownCategory(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.CreateClub("U_creator", request.CreateClubRequest{
		Name:        "Chess Club",
		Description: "We play chess",
		Category:    "GAMING",
	})
	if errorx.GetCode(err) != errorx.CodeValidation {
		t.Fatalf("code = %d, want %d", errorx.GetCode(err), errorx.CodeValidation)
	}
}

func TestUpdateClubPartialFields(t *testing.T) {
	env := newTestEnv(t)
	created, err := env.svc.CreateClub("U_creator", request.CreateClubRequest{
		Name:        "Chess Club",
		Description: "We play chess",
		Category:    club_category_enum.ACADEMIC,
	})
	if err != nil {
		t.Fatalf("CreateClub: %v", err)
	}

	newName := "Chess & Go Club"
	rsp, err := env.svc.UpdateClub("U_creator", created.Id, request.UpdateClubRequest{Name: &newName})
	if err != nil {
		t.Fatalf("UpdateClub: %v", err)
	}
	if rsp.Name != newName {
		t.Fatalf("name = %s, want %s", rsp.Name, newName)
	}
	// 未提供的字段保持不变
	if rsp.Description != "We play chess" || rsp.Category != club_category_enum.ACADEMIC {
		t.Fatalf("untouched fields changed: %+v", rsp)
	}
	if !env.publisher.published(constants.TopicClubUpdated) {
		t.Fatalf("expected %s event", constants.TopicClubUpdated)
	}
}

func TestUpdateClubRequiresLeadership(t *testing.T) {
	env := newTestEnv(t)
	created, _ := env.svc.CreateClub("U_creator", request.CreateClubRequest{
		Name: "Chess Club", Description: "d", Category: club_category_enum.ACADEMIC,
	})

	newName := "Hijacked Club"

	// 非成员
	if _, err := env.svc.UpdateClub("U_stranger", created.Id, request.UpdateClubRequest{Name: &newName}); errorx.GetCode(err) != errorx.CodePermission {
		t.Fatalf("stranger update should be permission error")
	}

	// 普通成员
	member := &model.Membership{UserUuid: "U_member", ClubId: created.Id, Role: club_role_enum.MEMBER, JoinedAt: time.Now()}
	if err := env.memberRepo.Create(member); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := env.svc.UpdateClub("U_member", created.Id, request.UpdateClubRequest{Name: &newName}); errorx.GetCode(err) != errorx.CodePermission {
		t.Fatalf("member update should be permission error")
	}
	if err := env.svc.UpdateClubStatus("U_member", created.Id, club_status_enum.INACTIVE); errorx.GetCode(err) != errorx.CodePermission {
		t.Fatalf("member status update should be permission error")
	}

	// 未授权的尝试不改动数据
	club, _ := env.clubRepo.FindById(created.Id)
	if club.Name != "Chess Club" || club.Status != club_status_enum.ACTIVE {
		t.Fatalf("club changed by unauthorized operator: %+v", club)
	}

	// 管理员可以更新
	if _, err := env.svc.UpdateClub("U_creator", created.Id, request.UpdateClubRequest{Name: &newName}); err != nil {
		t.Fatalf("admin update: %v", err)
	}
}

func TestUpdateClubNotFound(t *testing.T) {
	env := newTestEnv(t)
	name := "x"
	_, err := env.svc.UpdateClub("U_creator", 99, request.UpdateClubRequest{Name: &name})
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("code = %d, want %d", errorx.GetCode(err), errorx.CodeNotFound)
	}
}

func TestUpdateClubStatusValidation(t *testing.T) {
	env := newTestEnv(t)
	created, _ := env.svc.CreateClub("U_creator", request.CreateClubRequest{
		Name: "Chess Club", Description: "d", Category: club_category_enum.ACADEMIC,
	})

	if err := env.svc.UpdateClubStatus("U_creator", created.Id, "SUSPENDED"); errorx.GetCode(err) != errorx.CodeValidation {
		t.Fatalf("unknown status should be validation error")
	}
	if err := env.svc.UpdateClubStatus("U_creator", created.Id, club_status_enum.INACTIVE); err != nil {
		t.Fatalf("UpdateClubStatus: %v", err)
	}
	club, _ := env.clubRepo.FindById(created.Id)
	if club.Status != club_status_enum.INACTIVE {
		t.Fatalf("status = %s, want INACTIVE", club.Status)
	}
	if !env.publisher.published(constants.TopicClubStatusUpdated) {
		t.Fatalf("expected %s event", constants.TopicClubStatusUpdated)
	}
}

func TestDeleteClubRequiresClubAdmin(t *testing.T) {
	env := newTestEnv(t)
	created, _ := env.svc.CreateClub("U_creator", request.CreateClubRequest{
		Name: "Chess Club", Description: "d", Category: club_category_enum.ACADEMIC,
	})

	// 非成员
	if err := env.svc.DeleteClub("U_stranger", created.Id); errorx.GetCode(err) != errorx.CodePermission {
		t.Fatalf("stranger delete should be permission error")
	}

	// 普通成员
	member := &model.Membership{UserUuid: "U_member", ClubId: created.Id, Role: club_role_enum.MEMBER, JoinedAt: time.Now()}
	if err := env.memberRepo.Create(member); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := env.svc.DeleteClub("U_member", created.Id); errorx.GetCode(err) != errorx.CodePermission {
		t.Fatalf("member delete should be permission error")
	}

	// 管理员成功，级联清理成员
	if err := env.svc.DeleteClub("U_creator", created.Id); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, err := env.clubRepo.FindById(created.Id); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("club should be gone after delete")
	}
	if _, err := env.memberRepo.FindByUserAndClub("U_member", created.Id); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("memberships should be cascaded")
	}
	if !env.publisher.published(constants.TopicClubDeleted) {
		t.Fatalf("expected %s event", constants.TopicClubDeleted)
	}
}

func TestDeleteClubStorageFailureIsNotPermissionError(t *testing.T) {
	env := newTestEnv(t)
	created, _ := env.svc.CreateClub("U_creator", request.CreateClubRequest{
		Name: "Chess Club", Description: "d", Category: club_category_enum.ACADEMIC,
	})

	// 成员查询故障要按服务繁忙上报，不能伪装成权限不足
	env.memberRepo.findErr = errorx.New(errorx.CodeDBError, "connection refused")
	err := env.svc.DeleteClub("U_creator", created.Id)
	if errorx.GetCode(err) != errorx.CodeInternal {
		t.Fatalf("code = %d, want %d", errorx.GetCode(err), errorx.CodeInternal)
	}

	env.memberRepo.findErr = nil
	if err := env.svc.DeleteClub("U_creator", created.Id); err != nil {
		t.Fatalf("delete after recovery: %v", err)
	}
}

func TestDeleteClubNotFound(t *testing.T) {
	env := newTestEnv(t)
	if err := env.svc.DeleteClub("U_x", 99); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("missing club should be not-found")
	}
}

func TestSearchClubsFiltersAndPaginates(t *testing.T) {
	env := newTestEnv(t)
	for _, name := range []string{"Chess Club", "Robotics Club"} {
		if _, err := env.svc.CreateClub("U_creator", request.CreateClubRequest{
			Name: name, Description: "d", Category: club_category_enum.ACADEMIC,
		}); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}

	rsp, err := env.svc.SearchClubs(request.SearchClubsRequest{Name: "chess", Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("SearchClubs: %v", err)
	}
	if len(rsp.Items) != 1 || rsp.Items[0].Name != "Chess Club" {
		t.Fatalf("unexpected result: %+v", rsp.Items)
	}
	if rsp.CurrentPage != 1 || rsp.TotalPages != 1 || rsp.TotalItems != 1 || rsp.ItemsPerPage != 10 {
		t.Fatalf("unexpected pagination: %+v", rsp.Pagination)
	}
}

func TestSearchClubsDefaultsPagination(t *testing.T) {
	env := newTestEnv(t)
	rsp, err := env.svc.SearchClubs(request.SearchClubsRequest{})
	if err != nil {
		t.Fatalf("SearchClubs: %v", err)
	}
	if rsp.CurrentPage != constants.DEFAULT_PAGE || rsp.ItemsPerPage != constants.DEFAULT_LIMIT {
		t.Fatalf("defaults not applied: %+v", rsp.Pagination)
	}
	if rsp.Items == nil {
		t.Fatalf("items should serialize as [], not null")
	}
}

func TestGetClubNotFoundAfterDelete(t *testing.T) {
	env := newTestEnv(t)
	created, _ := env.svc.CreateClub("U_creator", request.CreateClubRequest{
		Name: "Chess Club", Description: "d", Category: club_category_enum.ACADEMIC,
	})

	if _, err := env.svc.GetClub(created.Id); err != nil {
		t.Fatalf("GetClub before delete: %v", err)
	}
	if err := env.svc.DeleteClub("U_creator", created.Id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := env.svc.GetClub(created.Id); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("deleted club should be not-found")
	}
}
