//go:build integration
// +build integration

package dao

import (
	"fmt"
	"testing"
	"time"

	dao "campus_club_server/internal/dao/mysql"
	"campus_club_server/internal/model"
	"campus_club_server/pkg/enum/club/club_category_enum"
	"campus_club_server/pkg/enum/club/club_status_enum"
	"campus_club_server/pkg/enum/membership/club_role_enum"
	"campus_club_server/pkg/errorx"
	"campus_club_server/pkg/util/random"
)

// 需要本机 MySQL 可用（按 configs/config.toml）

func TestRepositoriesRoundTrip(t *testing.T) {
	repos := dao.Init()

	uuid := "U" + random.GetNowAndLenRandomString(11)
	user := &model.User{
		Uuid:        uuid,
		Name:        "dao test",
		Email:       fmt.Sprintf("dao_%d@itest.local", time.Now().UnixNano()),
		RawPassword: "password123",
	}
	if err := repos.User.Create(user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	// BeforeSave 必须已经把明文换成 bcrypt 哈希
	saved, err := repos.User.FindByUuid(uuid)
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	if saved.Password == "password123" || !saved.CheckPassword("password123") {
		t.Fatalf("password not hashed properly")
	}

	club := &model.Club{
		Name:        fmt.Sprintf("DAO Club %d", time.Now().UnixNano()),
		Description: "round trip",
		Category:    club_category_enum.ACADEMIC,
		Status:      club_status_enum.ACTIVE,
	}
	if err := repos.Club.Create(club); err != nil {
		t.Fatalf("create club: %v", err)
	}
	defer func() {
		_ = repos.Membership.DeleteByClubId(club.ID)
		_ = repos.Club.SoftDeleteById(club.ID)
	}()

	member := &model.Membership{
		UserUuid: uuid,
		ClubId:   club.ID,
		Role:     club_role_enum.MEMBER,
		JoinedAt: time.Now(),
	}
	if err := repos.Membership.Create(member); err != nil {
		t.Fatalf("create membership: %v", err)
	}

	// (user_uuid, club_id) 唯一索引，重复插入要翻译成冲突错误
	dup := &model.Membership{
		UserUuid: uuid,
		ClubId:   club.ID,
		Role:     club_role_enum.MEMBER,
		JoinedAt: time.Now(),
	}
	if err := repos.Membership.Create(dup); errorx.GetCode(err) != errorx.CodeConflict {
		t.Fatalf("duplicate membership: code=%d, want %d (err=%v)", errorx.GetCode(err), errorx.CodeConflict, err)
	}

	// 硬删除后可以重新加入
	if err := repos.Membership.Delete(uuid, club.ID); err != nil {
		t.Fatalf("delete membership: %v", err)
	}
	rejoin := &model.Membership{
		UserUuid: uuid,
		ClubId:   club.ID,
		Role:     club_role_enum.MEMBER,
		JoinedAt: time.Now(),
	}
	if err := repos.Membership.Create(rejoin); err != nil {
		t.Fatalf("rejoin after delete: %v", err)
	}

	// 软删除后常规查询不可见
	if err := repos.Club.SoftDeleteById(club.ID); err != nil {
		t.Fatalf("soft delete club: %v", err)
	}
	if _, err := repos.Club.FindById(club.ID); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("soft deleted club should be not-found, got %v", err)
	}
}
