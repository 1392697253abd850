package client

import (
	"fmt"
	"sync/atomic"

	"fitclub-backend/internal/models"
)

// OutcomeKind tags the result of an optimistic mutation.
type OutcomeKind string

const (
	Applied    OutcomeKind = "applied"
	RolledBack OutcomeKind = "rolled_back"
)

type Outcome struct {
	Kind   OutcomeKind
	Reason string // set when rolled back
}

// Command is one optimistic mutation: apply updates the local snapshot,
// send issues the remote write.
type Command interface {
	apply(*Snapshot)
	send(*Client) error
}

// Temporary ids mark optimistic records until the refresh after a successful
// write replaces them with the server-assigned id.
var tempSeq atomic.Int64

func tempID() string {
	return fmt.Sprintf("temp-%d", tempSeq.Add(1))
}

// ----------------------------------------
// MEMBERS
// ----------------------------------------

type AddMember struct{ Member models.Member }

func (c AddMember) apply(s *Snapshot) {
	m := c.Member
	m.ID = tempID()
	s.Members = append(s.Members, m)
}
func (c AddMember) send(cl *Client) error {
	_, err := cl.CreateMember(c.Member)
	return err
}

type UpdateMember struct{ Member models.Member }

func (c UpdateMember) apply(s *Snapshot) {
	next := make([]models.Member, len(s.Members))
	for i, m := range s.Members {
		if m.ID == c.Member.ID {
			next[i] = c.Member
		} else {
			next[i] = m
		}
	}
	s.Members = next
}
func (c UpdateMember) send(cl *Client) error { return cl.UpdateMember(c.Member) }

type DeleteMember struct{ ID string }

func (c DeleteMember) apply(s *Snapshot) {
	next := s.Members[:0:0]
	for _, m := range s.Members {
		if m.ID != c.ID {
			next = append(next, m)
		}
	}
	s.Members = next
}
func (c DeleteMember) send(cl *Client) error { return cl.DeleteMember(c.ID) }

// ----------------------------------------
// TRAINERS
// ----------------------------------------

type AddTrainer struct{ Trainer models.Trainer }

func (c AddTrainer) apply(s *Snapshot) {
	t := c.Trainer
	t.ID = tempID()
	s.Trainers = append(s.Trainers, t)
}
func (c AddTrainer) send(cl *Client) error {
	_, err := cl.CreateTrainer(c.Trainer)
	return err
}

type UpdateTrainer struct{ Trainer models.Trainer }

func (c UpdateTrainer) apply(s *Snapshot) {
	next := make([]models.Trainer, len(s.Trainers))
	for i, t := range s.Trainers {
		if t.ID == c.Trainer.ID {
			next[i] = c.Trainer
		} else {
			next[i] = t
		}
	}
	s.Trainers = next
}
func (c UpdateTrainer) send(cl *Client) error { return cl.UpdateTrainer(c.Trainer) }

type DeleteTrainer struct{ ID string }

func (c DeleteTrainer) apply(s *Snapshot) {
	next := s.Trainers[:0:0]
	for _, t := range s.Trainers {
		if t.ID != c.ID {
			next = append(next, t)
		}
	}
	s.Trainers = next
}
func (c DeleteTrainer) send(cl *Client) error { return cl.DeleteTrainer(c.ID) }

// ----------------------------------------
// PACKAGES
// ----------------------------------------

type AddPackage struct{ Package models.Package }

func (c AddPackage) apply(s *Snapshot) {
	p := c.Package
	p.ID = tempID()
	s.Packages = append(s.Packages, p)
}
func (c AddPackage) send(cl *Client) error {
	_, err := cl.CreatePackage(c.Package)
	return err
}

type UpdatePackage struct{ Package models.Package }

func (c UpdatePackage) apply(s *Snapshot) {
	next := make([]models.Package, len(s.Packages))
	for i, p := range s.Packages {
		if p.ID == c.Package.ID {
			next[i] = c.Package
		} else {
			next[i] = p
		}
	}
	s.Packages = next
}
func (c UpdatePackage) send(cl *Client) error { return cl.UpdatePackage(c.Package) }

type DeletePackage struct{ ID string }

func (c DeletePackage) apply(s *Snapshot) {
	next := s.Packages[:0:0]
	for _, p := range s.Packages {
		if p.ID != c.ID {
			next = append(next, p)
		}
	}
	s.Packages = next
}
func (c DeletePackage) send(cl *Client) error { return cl.DeletePackage(c.ID) }

// ----------------------------------------
// GALLERY
// ----------------------------------------

type AddGalleryItem struct{ Item models.GalleryItem }

func (c AddGalleryItem) apply(s *Snapshot) {
	g := c.Item
	g.ID = tempID()
	s.Gallery = append(s.Gallery, g)
}
func (c AddGalleryItem) send(cl *Client) error {
	_, err := cl.CreateGalleryItem(c.Item)
	return err
}

type DeleteGalleryItem struct{ ID string }

func (c DeleteGalleryItem) apply(s *Snapshot) {
	next := s.Gallery[:0:0]
	for _, g := range s.Gallery {
		if g.ID != c.ID {
			next = append(next, g)
		}
	}
	s.Gallery = next
}
func (c DeleteGalleryItem) send(cl *Client) error { return cl.DeleteGalleryItem(c.ID) }

// ----------------------------------------
// BRANCHES
// ----------------------------------------

type AddBranch struct{ Branch models.Branch }

func (c AddBranch) apply(s *Snapshot) {
	b := c.Branch
	b.ID = tempID()
	s.Branches = append(s.Branches, b)
}
func (c AddBranch) send(cl *Client) error {
	_, err := cl.CreateBranch(c.Branch)
	return err
}

type DeleteBranch struct{ ID string }

func (c DeleteBranch) apply(s *Snapshot) {
	next := s.Branches[:0:0]
	for _, b := range s.Branches {
		if b.ID != c.ID {
			next = append(next, b)
		}
	}
	s.Branches = next
}
func (c DeleteBranch) send(cl *Client) error { return cl.DeleteBranch(c.ID) }

// ----------------------------------------
// CONTACTS
// ----------------------------------------

type DeleteContact struct{ ID string }

func (c DeleteContact) apply(s *Snapshot) {
	next := s.Contacts[:0:0]
	for _, sub := range s.Contacts {
		if sub.ID != c.ID {
			next = append(next, sub)
		}
	}
	s.Contacts = next
}
func (c DeleteContact) send(cl *Client) error { return cl.DeleteContact(c.ID) }
