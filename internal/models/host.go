package models

import "time"

// Host represents a provisioned hosting slot owned by a user.
// The ftp/ssh/mysql/mail credential columns are filled by the
// provisioning pipeline and stay NULL until then.
type Host struct {
	ID        int64      `db:"id" json:"id"`
	Subdomain string     `db:"subdomain" json:"subdomain"`
	Plan      Plan       `db:"plan" json:"plan"`
	Status    HostStatus `db:"status" json:"status"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	ExpiresAt *time.Time `db:"expires_at" json:"expires_at"`
	OwnerID   int64      `db:"owner_id" json:"owner_id"`

	FTPUser       *string `db:"ftp_user" json:"ftp_user"`
	FTPPassword   *string `db:"ftp_password" json:"ftp_password"`
	SSHUser       *string `db:"ssh_user" json:"ssh_user"`
	SSHKey        *string `db:"ssh_key" json:"ssh_key"`
	MySQLDB       *string `db:"mysql_db" json:"mysql_db"`
	MySQLUser     *string `db:"mysql_user" json:"mysql_user"`
	MySQLPassword *string `db:"mysql_password" json:"mysql_password"`
	MailUser      *string `db:"mail_user" json:"mail_user"`
	MailPassword  *string `db:"mail_password" json:"mail_password"`
}
