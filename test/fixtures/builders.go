/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package fixtures

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/unikorn-cloud/webtest/pkg/apiclient"
)

// PostPayloadBuilder builds post payloads for testing.
type PostPayloadBuilder struct {
	post apiclient.Post
}

// NewPostPayload creates a builder with a unique title so runs never collide.
func NewPostPayload() *PostPayloadBuilder {
	id := uuid.NewString()[:8]

	return &PostPayloadBuilder{
		post: apiclient.Post{
			UserID: 1,
			Title:  fmt.Sprintf("testautomation-%s", id),
			Body:   fmt.Sprintf("Post %s created by the automation suite", id),
		},
	}
}

// WithUserID sets the owning user.
func (b *PostPayloadBuilder) WithUserID(userID int) *PostPayloadBuilder {
	b.post.UserID = userID

	return b
}

// WithTitle sets the title.
func (b *PostPayloadBuilder) WithTitle(title string) *PostPayloadBuilder {
	b.post.Title = title

	return b
}

// WithBody sets the body.
func (b *PostPayloadBuilder) WithBody(body string) *PostPayloadBuilder {
	b.post.Body = body

	return b
}

// WithID sets the ID, used for full replacements.
func (b *PostPayloadBuilder) WithID(id int) *PostPayloadBuilder {
	b.post.ID = id

	return b
}

// Build returns the completed post.
func (b *PostPayloadBuilder) Build() apiclient.Post {
	return b.post
}
