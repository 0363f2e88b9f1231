package activity

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"campus_club_server/internal/dao/mysql/repository"
	"campus_club_server/internal/dto/request"
	"campus_club_server/internal/model"
	"campus_club_server/pkg/constants"
	"campus_club_server/pkg/enum/activity/activity_status_enum"
	"campus_club_server/pkg/enum/membership/club_role_enum"
	"campus_club_server/pkg/errorx"
)

// ==================== 测试替身 ====================

// fakeClubRepo 只提供活动侧需要的社团存在性检查
type fakeClubRepo struct {
	clubs map[uint]*model.Club
}

func (f *fakeClubRepo) FindById(id uint) (*model.Club, error) {
	if club, ok := f.clubs[id]; ok {
		copied := *club
		return &copied, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "club not found")
}

func (f *fakeClubRepo) FindByIdWithRelations(id uint) (*model.Club, error) { return f.FindById(id) }
func (f *fakeClubRepo) Search(name, status string, page, limit int) ([]model.Club, int64, error) {
	return nil, 0, nil
}
func (f *fakeClubRepo) Create(club *model.Club) error                        { return nil }
func (f *fakeClubRepo) Updates(id uint, fields map[string]interface{}) error { return nil }
func (f *fakeClubRepo) UpdateStatus(id uint, status string) error            { return nil }
func (f *fakeClubRepo) SoftDeleteById(id uint) error                         { return nil }

// fakeMembershipRepo 按用户返回测试社团内的固定角色
type fakeMembershipRepo struct {
	roles map[string]string
}

func (f *fakeMembershipRepo) FindByUserAndClub(userUuid string, clubId uint) (*model.Membership, error) {
	if role, ok := f.roles[userUuid]; ok {
		return &model.Membership{UserUuid: userUuid, ClubId: clubId, Role: role}, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "membership not found")
}

func (f *fakeMembershipRepo) FindByUser(userUuid string) ([]model.Membership, error) { return nil, nil }
func (f *fakeMembershipRepo) FindByClubPaged(clubId uint, page, limit int) ([]model.Membership, int64, error) {
	return nil, 0, nil
}
func (f *fakeMembershipRepo) Create(member *model.Membership) error                      { return nil }
func (f *fakeMembershipRepo) UpdateRole(userUuid string, clubId uint, role string) error { return nil }
func (f *fakeMembershipRepo) Delete(userUuid string, clubId uint) error                  { return nil }
func (f *fakeMembershipRepo) DeleteByClubId(clubId uint) error                           { return nil }

// fakeActivityRepo 内存活动仓库
type fakeActivityRepo struct {
	mu         sync.Mutex
	nextId     uint
	activities map[uint]*model.Activity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{nextId: 1, activities: make(map[uint]*model.Activity)}
}

func (f *fakeActivityRepo) FindById(id uint) (*model.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.activities[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "activity not found")
}

func (f *fakeActivityRepo) FindByClubPaged(clubId uint, page, limit int) ([]model.Activity, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []model.Activity
	for _, a := range f.activities {
		if a.ClubId == clubId {
			matched = append(matched, *a)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].StartDate.Before(matched[j].StartDate) })
	return pageSlice(matched, page, limit)
}

func (f *fakeActivityRepo) FindUpcoming(now time.Time, page, limit int) ([]model.Activity, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []model.Activity
	for _, a := range f.activities {
		if !a.StartDate.Before(now) && a.Status == activity_status_enum.ACTIVE {
			matched = append(matched, *a)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].StartDate.Before(matched[j].StartDate) })
	return pageSlice(matched, page, limit)
}

func pageSlice(matched []model.Activity, page, limit int) ([]model.Activity, int64, error) {
	total := int64(len(matched))
	start := (page - 1) * limit
	if start >= len(matched) {
		return []model.Activity{}, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeActivityRepo) Create(activity *model.Activity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	activity.ID = f.nextId
	f.nextId++
	copied := *activity
	f.activities[activity.ID] = &copied
	return nil
}

func (f *fakeActivityRepo) Updates(id uint, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.activities[id]
	if !ok {
		return errorx.New(errorx.CodeNotFound, "activity not found")
	}
	if v, ok := fields["title"]; ok {
		a.Title = v.(string)
	}
	if v, ok := fields["description"]; ok {
		a.Description = v.(string)
	}
	if v, ok := fields["start_date"]; ok {
		a.StartDate = v.(time.Time)
	}
	if v, ok := fields["end_date"]; ok {
		endDate := v.(time.Time)
		a.EndDate = &endDate
	}
	if v, ok := fields["location"]; ok {
		a.Location = v.(string)
	}
	return nil
}

func (f *fakeActivityRepo) UpdateStatus(id uint, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.activities[id]; ok {
		a.Status = status
		return nil
	}
	return errorx.New(errorx.CodeNotFound, "activity not found")
}

func (f *fakeActivityRepo) Delete(id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.activities, id)
	return nil
}

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
type syncCache struct{}

func (c *syncCache) Set(ctx context.Context, key, value string, ttl time.Duration) error { return nil }
func (c *syncCache) Get(ctx context.Context, key string) (string, error)                 { return "", nil }
func (c *syncCache) Delete(ctx context.Context, key string) error                        { return nil }
func (c *syncCache) DeleteByPattern(ctx context.Context, pattern string) error           { return nil }
func (c *syncCache) SubmitTask(action func())                                            { action() }

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

const testClubId = 1

// 测试社团内的固定成员：秘书具备活动管理权限，普通成员没有
const (
	opSecretary = "U_secretary"
	opMember    = "U_member"
)

func newTestService(t *testing.T) (*activityService, *fakeActivityRepo, *capturePublisher) {
	t.Helper()
	activityRepo := newFakeActivityRepo()
	club := &model.Club{Name: "Chess Club"}
	club.ID = testClubId
	repos := &repository.Repositories{
		Club: &fakeClubRepo{clubs: map[uint]*model.Club{testClubId: club}},
		Membership: &fakeMembershipRepo{roles: map[string]string{
			opSecretary: club_role_enum.SECRETARY,
			opMember:    club_role_enum.MEMBER,
		}},
		Activity: activityRepo,
	}
	publisher := &capturePublisher{}
	return NewActivityService(repos, &syncCache{}, publisher), activityRepo, publisher
}

// ==================== 用例 ====================

func TestCreateActivityStartsPending(t *testing.T) {
	svc, _, publisher := newTestService(t)

	start := time.Now().Add(24 * time.Hour)
	end := start.Add(2 * time.Hour)
	rsp, err := svc.CreateActivity(opSecretary, testClubId,request.CreateActivityRequest{
		Title:       "Weekly Match",
		Description: "Open board night",
		StartDate:   start,
		EndDate:     &end,
		Location:    "Room 101",
	})
	if err != nil {
		t.Fatalf("CreateActivity: %v", err)
	}
	if rsp.Status != activity_status_enum.PENDING {
		t.Fatalf("status = %s, want PENDING", rsp.Status)
	}
	if rsp.Title != "Weekly Match" || rsp.ClubId != testClubId || rsp.Location != "Room 101" {
		t.Fatalf("unexpected respond: %+v", rsp)
	}
	if rsp.EndDate == nil || *rsp.EndDate != end.Format(time.RFC3339) {
		t.Fatalf("endDate not carried: %+v", rsp.EndDate)
	}
	if !publisher.published(constants.TopicActivityCreated) {
		t.Fatalf("expected %s event", constants.TopicActivityCreated)
	}
}

func TestCreateActivityRejectsEndBeforeStart(t *testing.T) {
	svc, repo, _ := newTestService(t)

	start := time.Now().Add(24 * time.Hour)
	end := start.Add(-time.Hour)
	_, err := svc.CreateActivity(opSecretary, testClubId,request.CreateActivityRequest{
		Title:       "Weekly Match",
		Description: "d",
		StartDate:   start,
		EndDate:     &end,
	})
	if errorx.GetCode(err) != errorx.CodeValidation {
		t.Fatalf("code = %d, want %d", errorx.GetCode(err), errorx.CodeValidation)
	}
	if len(repo.activities) != 0 {
		t.Fatalf("nothing should be persisted on validation failure")
	}
}

func TestCreateActivityUnknownClub(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateActivity(opSecretary, 99, request.CreateActivityRequest{
		Title: "x", Description: "d", StartDate: time.Now(),
	})
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("code = %d, want %d", errorx.GetCode(err), errorx.CodeNotFound)
	}
}

func TestUpdateActivityValidatesMergedInterval(t *testing.T) {
	svc, _, _ := newTestService(t)

	start := time.Now().Add(24 * time.Hour)
	end := start.Add(2 * time.Hour)
	created, err := svc.CreateActivity(opSecretary, testClubId,request.CreateActivityRequest{
		Title: "Weekly Match", Description: "d", StartDate: start, EndDate: &end,
	})
	if err != nil {
		t.Fatalf("CreateActivity: %v", err)
	}

	// 只改 startDate，推到已有 endDate 之后应被拒绝
	lateStart := end.Add(time.Hour)
	if _, err := svc.UpdateActivity(opSecretary, created.Id,request.UpdateActivityRequest{StartDate: &lateStart}); errorx.GetCode(err) != errorx.CodeValidation {
		t.Fatalf("merged interval should be validated")
	}

	// 合法的部分更新
	newTitle := "Championship"
	rsp, err := svc.UpdateActivity(opSecretary, created.Id,request.UpdateActivityRequest{Title: &newTitle})
	if err != nil {
		t.Fatalf("UpdateActivity: %v", err)
	}
	if rsp.Title != newTitle || rsp.Description != "d" {
		t.Fatalf("partial update wrong: %+v", rsp)
	}
}

func TestUpdateActivityStatus(t *testing.T) {
	svc, repo, _ := newTestService(t)
	created, _ := svc.CreateActivity(opSecretary, testClubId,request.CreateActivityRequest{
		Title: "Weekly Match", Description: "d", StartDate: time.Now().Add(time.Hour),
	})

	if err := svc.UpdateActivityStatus(opSecretary, created.Id,"RUNNING"); errorx.GetCode(err) != errorx.CodeValidation {
		t.Fatalf("unknown status should be validation error")
	}
	if err := svc.UpdateActivityStatus(opSecretary, created.Id,activity_status_enum.ACTIVE); err != nil {
		t.Fatalf("UpdateActivityStatus: %v", err)
	}
	a, _ := repo.FindById(created.Id)
	if a.Status != activity_status_enum.ACTIVE {
		t.Fatalf("status = %s, want ACTIVE", a.Status)
	}
	if err := svc.UpdateActivityStatus(opSecretary, 99, activity_status_enum.CANCELLED); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("missing activity should be not-found")
	}
}

func TestDeleteActivity(t *testing.T) {
	svc, _, _ := newTestService(t)
	created, _ := svc.CreateActivity(opSecretary, testClubId,request.CreateActivityRequest{
		Title: "Weekly Match", Description: "d", StartDate: time.Now().Add(time.Hour),
	})

	if err := svc.DeleteActivity(opSecretary, created.Id); err != nil {
		t.Fatalf("DeleteActivity: %v", err)
	}
	if _, err := svc.GetActivity(created.Id); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("deleted activity should be not-found")
	}
	if err := svc.DeleteActivity(opSecretary, created.Id); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("double delete should be not-found")
	}
}

func TestActivityWritesRequireManagementRole(t *testing.T) {
	svc, repo, _ := newTestService(t)

	req := request.CreateActivityRequest{
		Title: "Weekly Match", Description: "d", StartDate: time.Now().Add(time.Hour),
	}

	// 普通成员和非成员都不能创建活动
	if _, err := svc.CreateActivity(opMember, testClubId, req); errorx.GetCode(err) != errorx.CodePermission {
		t.Fatalf("member create should be permission error, got %v", err)
	}
	if _, err := svc.CreateActivity("U_stranger", testClubId, req); errorx.GetCode(err) != errorx.CodePermission {
		t.Fatalf("stranger create should be permission error, got %v", err)
	}
	if len(repo.activities) != 0 {
		t.Fatalf("nothing should be persisted without management role")
	}

	created, err := svc.CreateActivity(opSecretary, testClubId, req)
	if err != nil {
		t.Fatalf("secretary create: %v", err)
	}

	newTitle := "Hijacked"
	if _, err := svc.UpdateActivity(opMember, created.Id, request.UpdateActivityRequest{Title: &newTitle}); errorx.GetCode(err) != errorx.CodePermission {
		t.Fatalf("member update should be permission error")
	}
	if err := svc.UpdateActivityStatus(opMember, created.Id, activity_status_enum.ACTIVE); errorx.GetCode(err) != errorx.CodePermission {
		t.Fatalf("member status update should be permission error")
	}
	if err := svc.DeleteActivity(opMember, created.Id); errorx.GetCode(err) != errorx.CodePermission {
		t.Fatalf("member delete should be permission error")
	}

	a, _ := repo.FindById(created.Id)
	if a.Title != "Weekly Match" || a.Status != activity_status_enum.PENDING {
		t.Fatalf("activity changed by unauthorized operator: %+v", a)
	}
}

func TestGetUpcomingActivitiesFilters(t *testing.T) {
	svc, _, _ := newTestService(t)

	past := time.Now().Add(-24 * time.Hour)
	soon := time.Now().Add(24 * time.Hour)
	later := time.Now().Add(48 * time.Hour)

	mk := func(title string, start time.Time, status string) {
		created, err := svc.CreateActivity(opSecretary, testClubId,request.CreateActivityRequest{
			Title: title, Description: "d", StartDate: start,
		})
		if err != nil {
			t.Fatalf("seed %s: %v", title, err)
		}
		if err := svc.UpdateActivityStatus(opSecretary, created.Id,status); err != nil {
			t.Fatalf("seed status %s: %v", title, err)
		}
	}
	mk("past", past, activity_status_enum.ACTIVE)
	mk("pending", soon, activity_status_enum.PENDING)
	mk("soon", soon, activity_status_enum.ACTIVE)
	mk("later", later, activity_status_enum.ACTIVE)

	rsp, err := svc.GetUpcomingActivities(request.PaginationRequest{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("GetUpcomingActivities: %v", err)
	}
	if len(rsp.Items) != 2 {
		t.Fatalf("items = %d, want 2: %+v", len(rsp.Items), rsp.Items)
	}
	// 按开始时间升序
	if rsp.Items[0].Title != "soon" || rsp.Items[1].Title != "later" {
		t.Fatalf("unexpected order: %s, %s", rsp.Items[0].Title, rsp.Items[1].Title)
	}
	if rsp.TotalItems != 2 {
		t.Fatalf("totalItems = %d, want 2", rsp.TotalItems)
	}
}

func TestGetClubActivitiesPaginates(t *testing.T) {
	svc, _, _ := newTestService(t)

	base := time.Now().Add(time.Hour)
	for i := 0; i < 5; i++ {
		if _, err := svc.CreateActivity(opSecretary, testClubId,request.CreateActivityRequest{
			Title: "a", Description: "d", StartDate: base.Add(time.Duration(i) * time.Hour),
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	rsp, err := svc.GetClubActivities(testClubId, request.PaginationRequest{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("GetClubActivities: %v", err)
	}
	if len(rsp.Items) != 2 || rsp.CurrentPage != 2 || rsp.TotalPages != 3 || rsp.TotalItems != 5 {
		t.Fatalf("unexpected page: items=%d pagination=%+v", len(rsp.Items), rsp.Pagination)
	}

	// 缺省分页参数
	rsp, err = svc.GetClubActivities(testClubId, request.PaginationRequest{})
	if err != nil {
		t.Fatalf("GetClubActivities defaults: %v", err)
	}
	if rsp.CurrentPage != constants.DEFAULT_PAGE || rsp.ItemsPerPage != constants.DEFAULT_LIMIT {
		t.Fatalf("defaults not applied: %+v", rsp.Pagination)
	}
}
